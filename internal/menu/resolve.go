// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is the sentinel error wrapped by InvalidChoiceError.
var ErrInvalidChoice = errors.New("invalid choice")

// InvalidChoiceError reports a selector line that neither starts with a
// known tag nor is allowed to run as an ad-hoc command.
type InvalidChoiceError struct {
	// Choice is the trimmed selector line that failed to resolve.
	Choice string
}

// Error implements the error interface.
func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("cannot resolve choice %q: ad-hoc commands are disabled; pick a menu entry or set `ad_hoc = true`", e.Choice)
}

// Unwrap returns ErrInvalidChoice so callers can use errors.Is for programmatic detection.
func (e *InvalidChoiceError) Unwrap() error { return ErrInvalidChoice }

// Resolve maps raw selector output to the commands to dispatch, in
// selection order. Selectors may return several lines (dmenu with
// multi-select patches, fzf -m); each non-empty line resolves on its own:
//
//  1. A line starting with a valid tag selects that entry's command.
//     Everything after the tag is ignored, so edited or truncated lines
//     still land on the entry the user picked.
//  2. Any other line is taken verbatim as an ad-hoc command when adHoc is
//     enabled.
//
// One unresolvable line fails the whole batch: partial dispatch of a
// multi-selection is worse than no dispatch. Whitespace-only output (the
// user cancelled the selector) resolves to no commands and no error.
func (s *Session) Resolve(raw string, adHoc bool) ([]string, error) {
	var commands []string
	for _, line := range strings.Split(raw, "\n") {
		choice := strings.TrimSpace(line)
		if choice == "" {
			continue
		}
		if index, ok := s.codec.Decode(choice); ok {
			commands = append(commands, string(s.entries[index].Run))
			continue
		}
		if adHoc {
			commands = append(commands, choice)
			continue
		}
		return nil, &InvalidChoiceError{Choice: choice}
	}
	return commands, nil
}
