// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BackendAuto uses the selector command when it is on PATH and falls
	// back to the builtin picker otherwise.
	BackendAuto Backend = "auto"
	// BackendCommand always spawns the external selector command.
	BackendCommand Backend = "command"
	// BackendBuiltin always uses the in-process picker.
	BackendBuiltin Backend = "builtin"

	// RuntimeNative dispatches commands to the host system shell.
	// Defined locally to avoid coupling config to pkg/menufile;
	// the orchestrator converts at the boundary.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs commands in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidBackend is returned when a Backend value is not recognized.
	ErrInvalidBackend = errors.New("invalid selector backend")
	// ErrInvalidConfigRuntimeMode is returned when a config RuntimeMode value is not recognized.
	ErrInvalidConfigRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSelectorCommand is returned when a SelectorCommand value is blank.
	ErrInvalidSelectorCommand = errors.New("invalid selector command")
	// ErrInvalidShell is returned when the configured shell is blank.
	ErrInvalidShell = errors.New("invalid shell")
)

type (
	// Backend selects how the menu is presented to the user.
	Backend string

	// InvalidBackendError is returned when a Backend value is not recognized.
	// It wraps ErrInvalidBackend for errors.Is() compatibility.
	InvalidBackendError struct {
		Value Backend
	}

	// RuntimeMode specifies the dispatch runtime for resolved commands.
	// Defined locally to avoid coupling config to pkg/menufile;
	// the orchestrator converts at the boundary.
	RuntimeMode string

	// InvalidConfigRuntimeModeError is returned when a config RuntimeMode value
	// is not recognized. It wraps ErrInvalidConfigRuntimeMode for errors.Is().
	InvalidConfigRuntimeModeError struct {
		Value RuntimeMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SelectorCommand is the executable name or path of the external selector.
	// A valid command must be non-empty and not whitespace-only.
	SelectorCommand string

	// InvalidSelectorCommandError is returned when a SelectorCommand value is
	// blank. It wraps ErrInvalidSelectorCommand for errors.Is() compatibility.
	InvalidSelectorCommandError struct {
		Value SelectorCommand
	}

	// InvalidShellError is returned when the configured shell is blank.
	// It wraps ErrInvalidShell for errors.Is() compatibility.
	InvalidShellError struct {
		Value string
	}

	// SelectorConfig configures how menus are shown and picked.
	SelectorConfig struct {
		// Command is the external selector program (default "dmenu").
		Command SelectorCommand `json:"command" mapstructure:"command" toml:"command"`
		// Args are extra arguments appended to every selector invocation.
		Args []string `json:"args" mapstructure:"args" toml:"args"`
		// Backend picks between the external command and the builtin picker.
		Backend Backend `json:"backend" mapstructure:"backend" toml:"backend"`
		// Multi allows the selector to return more than one line.
		Multi bool `json:"multi" mapstructure:"multi" toml:"multi"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// Shell runs resolved commands under the native runtime (default "sh").
		Shell string `json:"shell" mapstructure:"shell" toml:"shell"`
		// Runtime sets the default dispatch runtime.
		Runtime RuntimeMode `json:"runtime" mapstructure:"runtime" toml:"runtime"`
		// Selector configures the menu selector.
		Selector SelectorConfig `json:"selector" mapstructure:"selector" toml:"selector"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}
)

// String returns the string representation of the Backend.
func (b Backend) String() string { return string(b) }

// Validate checks that the Backend is one of the defined backends.
func (b Backend) Validate() error {
	switch b {
	case BackendAuto, BackendCommand, BackendBuiltin:
		return nil
	default:
		return &InvalidBackendError{Value: b}
	}
}

// Error implements the error interface for InvalidBackendError.
func (e *InvalidBackendError) Error() string {
	return fmt.Sprintf("invalid selector backend %q (valid: auto, command, builtin)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidBackendError) Unwrap() error { return ErrInvalidBackend }

// String returns the string representation of the config RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// Validate checks that the config RuntimeMode is one of the defined runtime modes.
func (m RuntimeMode) Validate() error {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return nil
	default:
		return &InvalidConfigRuntimeModeError{Value: m}
	}
}

// Error implements the error interface for InvalidConfigRuntimeModeError.
func (e *InvalidConfigRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigRuntimeModeError) Unwrap() error { return ErrInvalidConfigRuntimeMode }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate checks that the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the SelectorCommand.
func (c SelectorCommand) String() string { return string(c) }

// Validate checks that the SelectorCommand is non-empty and not whitespace-only.
func (c SelectorCommand) Validate() error {
	if strings.TrimSpace(string(c)) == "" {
		return &InvalidSelectorCommandError{Value: c}
	}
	return nil
}

// Error implements the error interface for InvalidSelectorCommandError.
func (e *InvalidSelectorCommandError) Error() string {
	return fmt.Sprintf("invalid selector command %q: must be non-empty", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSelectorCommandError) Unwrap() error { return ErrInvalidSelectorCommand }

// Error implements the error interface for InvalidShellError.
func (e *InvalidShellError) Error() string {
	return fmt.Sprintf("invalid shell %q: must be non-empty", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShellError) Unwrap() error { return ErrInvalidShell }

// Validate checks the SelectorConfig field by field.
func (c SelectorConfig) Validate() error {
	var errs []error
	if err := c.Command.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Backend.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the UIConfig field by field.
func (c UIConfig) Validate() error {
	return c.ColorScheme.Validate()
}

// Validate checks the Config and all of its sections. Field errors are
// aggregated so a broken file reports everything at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Shell) == "" {
		errs = append(errs, &InvalidShellError{Value: c.Shell})
	}
	if err := c.Runtime.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Selector.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("selector: %w", err))
	}
	if err := c.UI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui: %w", err))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Shell:   "sh",
		Runtime: RuntimeNative,
		Selector: SelectorConfig{
			Command: "dmenu",
			Args:    []string{},
			Backend: BackendAuto,
			Multi:   false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
