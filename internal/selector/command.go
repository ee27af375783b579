// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/menuk/menuk/pkg/platform"
)

// runCommand pipes the stream to the external selector and returns its
// stdout. Writing the stream and reading the selection happen concurrently
// under the hood, so a menu larger than the pipe buffer cannot deadlock.
//
// The selector's exit status is not consulted: dmenu exits nonzero when the
// user presses Escape, so stdout alone decides what was chosen. Stderr is
// passed through for the selector's own diagnostics.
func runCommand(ctx context.Context, stream string, opts Options) (string, error) {
	if !platform.IsInSandbox() {
		if _, err := exec.LookPath(opts.Command); err != nil {
			return "", &NotFoundError{Command: opts.Command}
		}
	}

	argv := make([]string, 0, len(opts.Args)+1)
	argv = append(argv, opts.Command)
	argv = append(argv, opts.Args...)
	argv = platform.SpawnArgv(argv)
	log.Debug("spawning selector", "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(stream)
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(output), nil
		}
		return "", &FailedError{Command: opts.Command, Cause: err}
	}
	return string(output), nil
}
