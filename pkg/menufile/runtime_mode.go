// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	"errors"
	"fmt"
)

const (
	// RuntimeNative dispatches commands through the system shell and
	// detaches from them.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual interprets commands in-process with mvdan/sh and
	// waits for them.
	RuntimeVirtual RuntimeMode = "virtual"
)

// ErrInvalidRuntimeMode is the sentinel error wrapped by InvalidRuntimeModeError.
var ErrInvalidRuntimeMode = errors.New("invalid runtime mode")

type (
	// RuntimeMode selects how resolved commands are dispatched.
	RuntimeMode string

	// InvalidRuntimeModeError is returned when a RuntimeMode value is not
	// recognized. It wraps ErrInvalidRuntimeMode for errors.Is() compatibility.
	InvalidRuntimeModeError struct {
		Value RuntimeMode
	}
)

// Error implements the error interface.
func (e *InvalidRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRuntimeModeError) Unwrap() error { return ErrInvalidRuntimeMode }

// String returns the string representation of the RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// Validate returns nil if the RuntimeMode is one of the defined modes.
// The zero value ("") is NOT valid; it serves as a sentinel for "no override".
func (m RuntimeMode) Validate() error {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return nil
	default:
		return &InvalidRuntimeModeError{Value: m}
	}
}
