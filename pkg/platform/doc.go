// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package detects application sandboxes (Flatpak, Snap) and rewrites
// spawn argvs so a sandboxed launcher can still reach the host's selector
// and applications. It also centralizes OS name constants for runtime.GOOS
// comparisons.
package platform
