// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDmenuOptions is the sentinel error wrapped by InvalidDmenuOptionsError.
var ErrInvalidDmenuOptions = errors.New("invalid dmenu options")

type (
	// DmenuOptions maps dmenu's command-line flags to typed config fields,
	// so a menu file controls the selector without quoting flag soup. Argv
	// renders them back; free-form Args are appended last and win when
	// dmenu sees a flag twice.
	DmenuOptions struct {
		// Bottom places the menu at the bottom of the screen (-b).
		Bottom bool `json:"bottom,omitempty" toml:"bottom,omitempty"`
		// Fast grabs the keyboard before reading stdin (-f).
		Fast bool `json:"fast,omitempty" toml:"fast,omitempty"`
		// CaseInsensitive matches entries case-insensitively (-i).
		CaseInsensitive bool `json:"case_insensitive,omitempty" toml:"case_insensitive,omitempty"`
		// Lines lists entries vertically, this many at a time (-l).
		Lines int `json:"lines,omitempty" toml:"lines,omitempty"`
		// Monitor pins the menu to a monitor, numbered from 0 (-m).
		Monitor *int `json:"monitor,omitempty" toml:"monitor,omitempty"`
		// Prompt is displayed before the input field (-p).
		Prompt string `json:"prompt,omitempty" toml:"prompt,omitempty"`
		// Font sets the font or font set (-fn).
		Font string `json:"font,omitempty" toml:"font,omitempty"`
		// NormalBackground colors normal items (-nb, #RGB or #RRGGBB).
		NormalBackground string `json:"normal_background,omitempty" toml:"normal_background,omitempty"`
		// NormalForeground colors normal item text (-nf).
		NormalForeground string `json:"normal_foreground,omitempty" toml:"normal_foreground,omitempty"`
		// SelectedBackground colors the selected item (-sb).
		SelectedBackground string `json:"selected_background,omitempty" toml:"selected_background,omitempty"`
		// SelectedForeground colors the selected item text (-sf).
		SelectedForeground string `json:"selected_foreground,omitempty" toml:"selected_foreground,omitempty"`
		// Args are extra arguments passed to the selector verbatim, after
		// all typed flags.
		Args []string `json:"args,omitempty" toml:"args,omitempty"`
	}

	// InvalidDmenuOptionsError is returned when a dmenu option holds a
	// value outside its domain. It wraps ErrInvalidDmenuOptions for
	// errors.Is() compatibility.
	InvalidDmenuOptionsError struct {
		Field  string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidDmenuOptionsError) Error() string {
	return fmt.Sprintf("invalid dmenu option %s: %s", e.Field, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDmenuOptionsError) Unwrap() error { return ErrInvalidDmenuOptions }

// Validate returns nil if every set option is inside its domain, or the
// joined option errors if not. A nil receiver is valid: no options at all.
func (o *DmenuOptions) Validate() error {
	if o == nil {
		return nil
	}
	var errs []error
	if o.Lines < 0 {
		errs = append(errs, &InvalidDmenuOptionsError{Field: "lines", Reason: "must not be negative"})
	}
	if o.Monitor != nil && *o.Monitor < 0 {
		errs = append(errs, &InvalidDmenuOptionsError{Field: "monitor", Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}

// Argv renders the options as selector command-line arguments. The order
// is stable so runs are reproducible; a nil receiver renders nothing.
func (o *DmenuOptions) Argv() []string {
	if o == nil {
		return nil
	}
	var argv []string
	if o.Bottom {
		argv = append(argv, "-b")
	}
	if o.Fast {
		argv = append(argv, "-f")
	}
	if o.CaseInsensitive {
		argv = append(argv, "-i")
	}
	if o.Lines > 0 {
		argv = append(argv, "-l", strconv.Itoa(o.Lines))
	}
	if o.Monitor != nil {
		argv = append(argv, "-m", strconv.Itoa(*o.Monitor))
	}
	if o.Prompt != "" {
		argv = append(argv, "-p", o.Prompt)
	}
	if o.Font != "" {
		argv = append(argv, "-fn", o.Font)
	}
	if o.NormalBackground != "" {
		argv = append(argv, "-nb", o.NormalBackground)
	}
	if o.NormalForeground != "" {
		argv = append(argv, "-nf", o.NormalForeground)
	}
	if o.SelectedBackground != "" {
		argv = append(argv, "-sb", o.SelectedBackground)
	}
	if o.SelectedForeground != "" {
		argv = append(argv, "-sf", o.SelectedForeground)
	}
	return append(argv, o.Args...)
}
