// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/menuk/menuk/pkg/platform"
)

// Backend constants.
const (
	// BackendAuto uses the command backend when the selector binary is on
	// PATH and falls back to the builtin picker otherwise.
	BackendAuto Backend = "auto"
	// BackendCommand always spawns the external selector.
	BackendCommand Backend = "command"
	// BackendBuiltin always uses the in-process picker.
	BackendBuiltin Backend = "builtin"
)

// Sentinel errors wrapped by the typed errors below.
var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("selector not found")
	// ErrFailed is the sentinel error wrapped by FailedError.
	ErrFailed = errors.New("selector failed")
)

type (
	// Backend identifies how the menu is presented. Values mirror
	// config.Backend; defined locally to avoid coupling, the CLI layer
	// casts at the package boundary.
	Backend string

	// Options configures one selector invocation.
	Options struct {
		// Command is the external selector binary, dmenu unless configured
		// otherwise.
		Command string
		// Args are passed to the external selector verbatim.
		Args []string
		// Backend picks how the menu is presented.
		Backend Backend
		// Multi enables multi-selection in the builtin picker. The command
		// backend ignores it; external selectors own their own selection
		// model.
		Multi bool
		// Title is the prompt shown by the builtin picker.
		Title string
		// Stderr is where the external selector's stderr goes. Nil means
		// the launcher's own stderr.
		Stderr io.Writer
	}

	// NotFoundError is returned when the external selector is not on PATH.
	NotFoundError struct {
		Command string
	}

	// FailedError is returned when the selector cannot be run at all.
	// A selector that runs and exits nonzero is a cancel, not a failure.
	FailedError struct {
		Command string
		Cause   error
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("selector %q not found on PATH", e.Command)
}

// Unwrap returns ErrNotFound so callers can use errors.Is for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Error implements the error interface.
func (e *FailedError) Error() string {
	return fmt.Sprintf("selector %q failed: %v", e.Command, e.Cause)
}

// Unwrap returns ErrFailed so callers can use errors.Is for programmatic detection.
func (e *FailedError) Unwrap() error { return ErrFailed }

// Run presents the entry stream through the configured backend and returns
// the raw selection text: zero or more chosen lines, exactly as the
// selector emitted them. An empty result means the menu was dismissed;
// that is a cancel, not an error.
func Run(ctx context.Context, stream string, opts Options) (string, error) {
	switch effectiveBackend(opts) {
	case BackendCommand:
		return runCommand(ctx, stream, opts)
	case BackendBuiltin:
		return runBuiltin(ctx, stream, opts)
	default:
		return "", fmt.Errorf("unknown selector backend %q", opts.Backend)
	}
}

// effectiveBackend resolves BackendAuto against the current system. The
// zero value counts as auto so a hand-built Options behaves sensibly.
func effectiveBackend(opts Options) Backend {
	switch opts.Backend {
	case BackendCommand, BackendBuiltin:
		return opts.Backend
	case BackendAuto, "":
		if commandOnPath(opts.Command) {
			return BackendCommand
		}
		log.Debug("selector not on PATH, using builtin picker", "command", opts.Command)
		return BackendBuiltin
	default:
		return opts.Backend
	}
}

// commandOnPath reports whether the selector binary is reachable. Inside a
// sandbox the selector lives on the host and its PATH is not visible, so
// the command backend is assumed reachable and spawn errors surface later.
func commandOnPath(command string) bool {
	if command == "" {
		return false
	}
	if platform.IsInSandbox() {
		return true
	}
	_, err := exec.LookPath(command)
	return err == nil
}
