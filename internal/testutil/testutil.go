// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points the per-user config lookup at dir for the duration
// of the test. Menu discovery and the app config both consult the platform
// config directory, so tests that must not see a developer's real files
// call this with a fresh temp dir.
//
// The variable that os.UserConfigDir consults differs per platform:
// Windows reads %AppData%, macOS derives the directory from $HOME, and
// everything else reads $XDG_CONFIG_HOME.
func SetConfigHome(t testing.TB, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}
