// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShell is the sentinel error wrapped by InvalidShellError.
var ErrInvalidShell = errors.New("invalid shell")

type (
	// Menu is a parsed menu definition: the selectable entries in display
	// order plus the per-menu configuration.
	Menu struct {
		// Entries are the selectable items, in the order they appear in
		// the selector. An empty menu is legal; with ad_hoc enabled it
		// degenerates into a bare command prompt.
		Entries []Entry `json:"entries,omitempty" toml:"entries,omitempty"`
		// Config carries the per-menu settings.
		Config MenuConfig `json:"config,omitempty" toml:"config,omitempty"`
		// FilePath is where the menu was loaded from ("" when it came
		// through a pipe).
		FilePath string `json:"-" toml:"-"`
	}

	// MenuConfig holds the per-menu settings. Every field is optional;
	// unset fields inherit from the app config and built-in defaults.
	MenuConfig struct {
		// Numbered selects decimal tags (0, 1, 2, ...) instead of the
		// default ternary home-row tags.
		Numbered *bool `json:"numbered,omitempty" toml:"numbered,omitempty"`
		// AdHoc lets selector lines that match no tag run verbatim as
		// shell commands.
		AdHoc *bool `json:"ad_hoc,omitempty" toml:"ad_hoc,omitempty"`
		// Separator overrides the tag family's default separator. The
		// literal "none" disables the separator entirely.
		Separator *Separator `json:"separator,omitempty" toml:"separator,omitempty"`
		// Shell runs the resolved commands (native runtime only).
		Shell string `json:"shell,omitempty" toml:"shell,omitempty"`
		// Runtime selects the dispatch backend for this menu.
		Runtime RuntimeMode `json:"runtime,omitempty" toml:"runtime,omitempty"`
		// Dmenu configures the external selector invocation.
		Dmenu *DmenuOptions `json:"dmenu,omitempty" toml:"dmenu,omitempty"`
	}

	// InvalidShellError is returned when a shell override is whitespace-only.
	// It wraps ErrInvalidShell for errors.Is() compatibility.
	InvalidShellError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *InvalidShellError) Error() string {
	return fmt.Sprintf("invalid shell %q (must not be whitespace-only)", e.Value)
}

// Unwrap returns ErrInvalidShell so callers can use errors.Is for programmatic detection.
func (e *InvalidShellError) Unwrap() error { return ErrInvalidShell }

// Validate returns nil if the menu is semantically valid, or the joined
// validation errors of every offending entry and config field. The CUE
// schema has already rejected structural problems by the time this runs;
// Validate backs it for menus built directly in Go.
func (m *Menu) Validate() error {
	var errs []error
	for i := range m.Entries {
		if err := m.Entries[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entries[%d]: %w", i, err))
		}
	}
	if err := m.Config.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}

// Validate returns nil if every set config field is valid.
func (c *MenuConfig) Validate() error {
	var errs []error
	if c.Shell != "" && isBlank(c.Shell) {
		errs = append(errs, &InvalidShellError{Value: c.Shell})
	}
	if c.Runtime != "" {
		if err := c.Runtime.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.Dmenu.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IsNumbered reports whether the menu asked for decimal tags. Unset means
// the default ternary family.
func (c *MenuConfig) IsNumbered() bool {
	return c.Numbered != nil && *c.Numbered
}

// AllowsAdHoc reports whether unmatched selector lines may run verbatim.
func (c *MenuConfig) AllowsAdHoc() bool {
	return c.AdHoc != nil && *c.AdHoc
}

// isBlank reports whether s contains no visible characters.
func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
