// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/menuk/menuk/pkg/platform"
)

// Sentinel errors wrapped by the typed errors below.
var (
	// ErrShellNotFound is the sentinel error wrapped by ShellNotFoundError.
	ErrShellNotFound = errors.New("shell not found")
	// ErrDispatchFailed is the sentinel error wrapped by DispatchError.
	ErrDispatchFailed = errors.New("dispatch failed")
)

type (
	// NativeRuntime dispatches commands through an external shell and
	// detaches from them. The launcher never observes the child's exit
	// status; this is what lets it return to the caller immediately after
	// a selection.
	NativeRuntime struct{}

	// ShellNotFoundError is returned when the configured shell cannot be
	// resolved on PATH.
	ShellNotFoundError struct {
		Shell string
	}

	// DispatchError is returned when a command cannot be spawned.
	DispatchError struct {
		Command string
		Cause   error
	}
)

// Error implements the error interface.
func (e *ShellNotFoundError) Error() string {
	return fmt.Sprintf("shell %q not found on PATH", e.Shell)
}

// Unwrap returns ErrShellNotFound so callers can use errors.Is for programmatic detection.
func (e *ShellNotFoundError) Unwrap() error { return ErrShellNotFound }

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch %q: %v", e.Command, e.Cause)
}

// Unwrap returns ErrDispatchFailed so callers can use errors.Is for programmatic detection.
func (e *DispatchError) Unwrap() error { return ErrDispatchFailed }

// NewNativeRuntime creates a new native runtime.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string {
	return "native"
}

// Available returns whether a default shell can be resolved on this system.
func (r *NativeRuntime) Available() bool {
	_, err := resolveShell("")
	return err == nil
}

// Validate checks that the shell for this batch resolves on PATH.
func (r *NativeRuntime) Validate(ctx *DispatchContext) error {
	_, err := resolveShell(ctx.Shell)
	return err
}

// Dispatch spawns each command as `<shell> <flag> <command>` and releases
// it. Commands are spawned in order; a spawn failure aborts the rest of the
// batch. Children get no stdio and outlive the launcher.
func (r *NativeRuntime) Dispatch(ctx *DispatchContext) *Result {
	shell, err := resolveShell(ctx.Shell)
	if err != nil {
		return NewErrorResult(1, err)
	}
	args := shellArgs(shell)

	for _, command := range ctx.Commands {
		if ctx.Context != nil {
			if err := ctx.Context.Err(); err != nil {
				return NewErrorResult(1, err)
			}
		}

		argv := make([]string, 0, len(args)+2)
		argv = append(argv, shell)
		argv = append(argv, args...)
		argv = append(argv, command)
		argv = platform.SpawnArgv(argv)

		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Dir = ctx.Dir
		cmd.Env = ctx.Env

		if err := cmd.Start(); err != nil {
			return NewErrorResult(1, &DispatchError{Command: command, Cause: err})
		}
		// The child owns its own lifetime from here on.
		_ = cmd.Process.Release()
	}

	return NewSuccessResult()
}

// resolveShell resolves the shell binary for native dispatch. An empty
// configured shell falls back to the platform default.
func resolveShell(configured string) (string, error) {
	if configured != "" {
		path, err := exec.LookPath(configured)
		if err != nil {
			return "", &ShellNotFoundError{Shell: configured}
		}
		return path, nil
	}

	switch runtime.GOOS {
	case platform.Windows:
		// Try PowerShell first, then cmd.
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		if cmd, err := exec.LookPath("cmd"); err == nil {
			return cmd, nil
		}
		return "", &ShellNotFoundError{Shell: "cmd"}
	default:
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", &ShellNotFoundError{Shell: "sh"}
	}
}

// shellArgs returns the flag that makes the shell interpret the next
// argument as a command string.
func shellArgs(shell string) []string {
	base := filepath.Base(shell)
	base = strings.TrimSuffix(base, ".exe")

	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		// Assume POSIX shell
		return []string{"-c"}
	}
}
