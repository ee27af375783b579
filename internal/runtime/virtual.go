// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime interprets commands in-process using mvdan/sh. Unlike the
// native runtime it waits for each command, so it is the runtime of choice
// when menuk is scripted and the caller wants exit codes back. No external
// shell is involved; commands get POSIX sh semantics on every platform.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string {
	return "virtual"
}

// Available returns true: the interpreter is built in.
func (r *VirtualRuntime) Available() bool {
	return true
}

// Validate parses every command in the batch to catch syntax errors before
// any of them runs.
func (r *VirtualRuntime) Validate(ctx *DispatchContext) error {
	parser := syntax.NewParser()
	for _, command := range ctx.Commands {
		if _, err := parser.Parse(strings.NewReader(command), "command"); err != nil {
			return fmt.Errorf("cannot parse %q: %w", command, err)
		}
	}
	return nil
}

// Dispatch runs each command in order and waits for it. A failing command
// does not stop the batch; the first nonzero exit code is what the Result
// reports. Interpreter failures that are not plain exit statuses abort the
// batch.
func (r *VirtualRuntime) Dispatch(ctx *DispatchContext) *Result {
	stdout := ctx.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := ctx.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	env := ctx.Env
	if env == nil {
		env = os.Environ()
	}
	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	parser := syntax.NewParser()
	firstFailure := ExitCode(0)

	for _, command := range ctx.Commands {
		if err := execCtx.Err(); err != nil {
			return NewErrorResult(1, err)
		}

		prog, err := parser.Parse(strings.NewReader(command), "command")
		if err != nil {
			return NewErrorResult(1, fmt.Errorf("cannot parse %q: %w", command, err))
		}

		// A fresh runner per command keeps commands isolated from each
		// other's shell state.
		runner, err := interp.New(
			interp.Dir(ctx.Dir),
			interp.Env(expand.ListEnviron(env...)),
			interp.StdIO(nil, stdout, stderr),
		)
		if err != nil {
			return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
		}

		if err := runner.Run(execCtx, prog); err != nil {
			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				if firstFailure.IsSuccess() {
					firstFailure = ExitCode(exitStatus)
				}
				continue
			}
			return NewErrorResult(1, fmt.Errorf("%q: %w", command, err))
		}
	}

	return NewExitCodeResult(firstFailure)
}
