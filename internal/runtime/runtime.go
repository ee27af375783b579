// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"fmt"
	"io"
)

// Runtime mode constants.
const (
	// ModeNative dispatches each command through an external shell and
	// detaches from it.
	ModeNative Mode = "native"
	// ModeVirtual interprets each command in-process and waits for it.
	ModeVirtual Mode = "virtual"
)

type (
	// Mode identifies a dispatch runtime. Values are string-typed so the CLI
	// layer can cast from config.RuntimeMode at the package boundary (runtime
	// cannot import config).
	Mode string

	// DispatchContext carries a batch of resolved commands and the
	// environment they run in.
	DispatchContext struct {
		// Context is the Go context for cancellation.
		Context context.Context
		// Commands holds the resolved command strings, in selection order.
		Commands []string
		// Shell interprets each command. Only the native runtime uses it;
		// empty means the platform default.
		Shell string
		// Dir overrides the working directory. Empty means the current directory.
		Dir string
		// Env is the environment for dispatched commands. Nil means the
		// launcher's own environment.
		Env []string
		// Stdout is where runtimes that wait write standard output.
		// Detaching runtimes ignore it.
		Stdout io.Writer
		// Stderr is where runtimes that wait write standard error.
		// Detaching runtimes ignore it.
		Stderr io.Writer
	}

	// Result contains the outcome of dispatching a batch.
	Result struct {
		// ExitCode is the first nonzero exit code observed, or 0. Runtimes
		// that detach never observe exit codes and always report 0.
		ExitCode ExitCode
		// Error contains any dispatch failure. Nonzero command exits are not
		// errors; they are reported through ExitCode alone.
		Error error
	}

	// Runtime defines the interface for command dispatch.
	Runtime interface {
		// Name returns the runtime name.
		Name() string
		// Available reports whether this runtime is usable on the current system.
		Available() bool
		// Validate checks that the batch can be dispatched.
		Validate(ctx *DispatchContext) error
		// Dispatch runs every command in the batch.
		Dispatch(ctx *DispatchContext) *Result
	}

	// Registry holds all available runtimes.
	Registry struct {
		runtimes map[Mode]Runtime
	}
)

// Success reports whether the whole batch was dispatched and, for runtimes
// that wait, every command exited with status 0.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// NewRegistry creates an empty runtime registry.
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[Mode]Runtime),
	}
}

// NewDefaultRegistry creates a registry with the native and virtual runtimes
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ModeNative, NewNativeRuntime())
	r.Register(ModeVirtual, NewVirtualRuntime())
	return r
}

// Register adds a runtime to the registry.
func (r *Registry) Register(mode Mode, rt Runtime) {
	r.runtimes[mode] = rt
}

// Get returns a runtime by mode.
func (r *Registry) Get(mode Mode) (Runtime, error) {
	rt, ok := r.runtimes[mode]
	if !ok {
		return nil, fmt.Errorf("runtime %q not registered", mode)
	}
	return rt, nil
}

// Available returns the modes of all registered runtimes that are usable on
// the current system.
func (r *Registry) Available() []Mode {
	var modes []Mode
	for mode, rt := range r.runtimes {
		if rt.Available() {
			modes = append(modes, mode)
		}
	}
	return modes
}

// Dispatch runs the batch using the runtime registered for the given mode.
func (r *Registry) Dispatch(mode Mode, ctx *DispatchContext) *Result {
	rt, err := r.Get(mode)
	if err != nil {
		return NewErrorResult(1, err)
	}

	if !rt.Available() {
		return NewErrorResult(1, fmt.Errorf("runtime %q is not available on this system", rt.Name()))
	}

	if err := rt.Validate(ctx); err != nil {
		return NewErrorResult(1, err)
	}

	return rt.Dispatch(ctx)
}
