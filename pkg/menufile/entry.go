// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEntryName is the sentinel error wrapped by InvalidEntryNameError.
	ErrInvalidEntryName = errors.New("invalid entry name")
	// ErrInvalidRunCommand is the sentinel error wrapped by InvalidRunCommandError.
	ErrInvalidRunCommand = errors.New("invalid run command")
)

type (
	// EntryName is the display label of a menu entry. It is arbitrary text
	// shown verbatim in the selector; whitespace-only names are legal and
	// the stream builder never filters or escapes them.
	EntryName string

	// RunCommand is the shell command dispatched when its entry is chosen.
	RunCommand string

	// Entry is one selectable menu item.
	Entry struct {
		// Name is the label shown in the selector.
		Name EntryName `json:"name" toml:"name"`
		// Run is the command dispatched when the entry is chosen.
		Run RunCommand `json:"run" toml:"run"`
	}

	// InvalidEntryNameError is returned when an EntryName is empty.
	// It wraps ErrInvalidEntryName for errors.Is() compatibility.
	InvalidEntryNameError struct {
		Value EntryName
	}

	// InvalidRunCommandError is returned when a RunCommand is empty or
	// whitespace-only. It wraps ErrInvalidRunCommand for errors.Is()
	// compatibility.
	InvalidRunCommandError struct {
		Value RunCommand
	}
)

// Error implements the error interface.
func (e *InvalidEntryNameError) Error() string {
	return fmt.Sprintf("invalid entry name %q (must not be empty)", e.Value)
}

// Unwrap returns ErrInvalidEntryName so callers can use errors.Is for programmatic detection.
func (e *InvalidEntryNameError) Unwrap() error { return ErrInvalidEntryName }

// Error implements the error interface.
func (e *InvalidRunCommandError) Error() string {
	return fmt.Sprintf("invalid run command %q (must not be empty or whitespace-only)", e.Value)
}

// Unwrap returns ErrInvalidRunCommand so callers can use errors.Is for programmatic detection.
func (e *InvalidRunCommandError) Unwrap() error { return ErrInvalidRunCommand }

// String returns the string representation of the EntryName.
func (n EntryName) String() string { return string(n) }

// Validate returns nil if the EntryName is structurally valid. Names only
// need to be non-empty: whitespace-only labels are a user's business.
func (n EntryName) Validate() error {
	if n == "" {
		return &InvalidEntryNameError{Value: n}
	}
	return nil
}

// String returns the string representation of the RunCommand.
func (r RunCommand) String() string { return string(r) }

// Validate returns nil if the RunCommand is structurally valid. A command
// must contain at least one visible character; the shell decides the rest.
func (r RunCommand) Validate() error {
	if isBlank(string(r)) {
		return &InvalidRunCommandError{Value: r}
	}
	return nil
}

// Validate returns nil if both entry fields are structurally valid, or the
// joined field errors if not.
func (e *Entry) Validate() error {
	return errors.Join(e.Name.Validate(), e.Run.Validate())
}
