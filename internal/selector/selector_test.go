// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/menuk/menuk/pkg/platform"
)

func skipWithoutPOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("POSIX selector binaries")
	}
}

func TestEffectiveBackend(t *testing.T) {
	if platform.IsInSandbox() {
		t.Skip("PATH lookups are bypassed inside a sandbox")
	}

	tests := []struct {
		name     string
		opts     Options
		expected Backend
	}{
		{
			name:     "explicit command",
			opts:     Options{Command: "menuk-no-such-selector", Backend: BackendCommand},
			expected: BackendCommand,
		},
		{
			name:     "explicit builtin",
			opts:     Options{Command: "sh", Backend: BackendBuiltin},
			expected: BackendBuiltin,
		},
		{
			name:     "auto with reachable command",
			opts:     Options{Command: "sh", Backend: BackendAuto},
			expected: BackendCommand,
		},
		{
			name:     "auto with missing command",
			opts:     Options{Command: "menuk-no-such-selector", Backend: BackendAuto},
			expected: BackendBuiltin,
		},
		{
			name:     "zero value counts as auto",
			opts:     Options{Command: "menuk-no-such-selector"},
			expected: BackendBuiltin,
		},
		{
			name:     "empty command cannot be reachable",
			opts:     Options{Backend: BackendAuto},
			expected: BackendBuiltin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == BackendCommand && tt.opts.Backend == BackendAuto {
				skipWithoutPOSIX(t)
			}
			if got := effectiveBackend(tt.opts); got != tt.expected {
				t.Errorf("effectiveBackend(%+v) = %q, want %q", tt.opts, got, tt.expected)
			}
		})
	}
}

func TestRun_UnknownBackend(t *testing.T) {
	_, err := Run(context.Background(), "0 edit\n", Options{Backend: Backend("popup")})
	if err == nil {
		t.Fatal("Run() should reject an unknown backend")
	}
	if !strings.Contains(err.Error(), "popup") {
		t.Errorf("error should name the backend, got %q", err)
	}
}

func TestRun_CommandBackend(t *testing.T) {
	skipWithoutPOSIX(t)

	stream := "0 edit\n1 build\n"
	got, err := Run(context.Background(), stream, Options{
		Command: "cat",
		Backend: BackendCommand,
		Stderr:  io.Discard,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got != stream {
		t.Errorf("Run() = %q, want the stream echoed back %q", got, stream)
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Command: "dmenu"}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should wrap ErrNotFound")
	}
	if !strings.Contains(err.Error(), "dmenu") {
		t.Errorf("Error() = %q, should name the selector", err.Error())
	}
}

func TestFailedError(t *testing.T) {
	err := &FailedError{Command: "rofi", Cause: errors.New("exec format error")}

	if !errors.Is(err, ErrFailed) {
		t.Error("FailedError should wrap ErrFailed")
	}
	for _, want := range []string{"rofi", "exec format error"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, should contain %q", err.Error(), want)
		}
	}
}
