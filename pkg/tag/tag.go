// SPDX-License-Identifier: MPL-2.0

// Package tag encodes menu entry indices as short display tags and decodes
// selector output back to indices. Two families exist: Decimal renders
// plain base-10 numbers for numbered menus, Ternary renders fixed-width
// words over a three-symbol home-row alphabet so a selection never needs
// more than a handful of keystrokes.
//
// A codec is bound to the entry count of a single menu build. Decode only
// recognizes tags that address an existing entry, which lets the caller
// treat every unrecognized line as a potential ad-hoc command.
package tag

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is the sentinel error wrapped by InvalidCountError.
var ErrInvalidCount = errors.New("invalid entry count")

// ErrCapacityExceeded is the sentinel error wrapped by CapacityError.
var ErrCapacityExceeded = errors.New("tag capacity exceeded")

type (
	// Family identifies a tag encoding family.
	Family string

	// Codec converts between entry indices and display tags for one menu
	// build. Implementations carry the entry count they were constructed
	// with; Decode rejects tags of entries that do not exist.
	Codec interface {
		// Family reports the encoding family of the codec.
		Family() Family
		// Encode returns the display tag for index. It is defined for
		// indices in [0, count) and never fails for them.
		Encode(index int) string
		// Decode reads a tag from the start of text, ignoring anything
		// after it. It reports false when text does not start with the
		// tag of an existing entry. Decode never panics, whatever the
		// input.
		Decode(text string) (int, bool)
		// SeparatorDefault returns the separator the family prefers
		// between tag and entry name, or false when the family has none.
		SeparatorDefault() (string, bool)
	}

	// InvalidCountError is returned when a codec constructor receives a
	// negative entry count.
	InvalidCountError struct {
		Count int
	}

	// CapacityError is returned when a menu holds more entries than the
	// ternary family can address.
	CapacityError struct {
		Count int
	}
)

const (
	// FamilyDecimal tags entries 0, 1, 2, ... with no width limit.
	FamilyDecimal Family = "decimal"
	// FamilyTernary tags entries with fixed-width base-3 words.
	FamilyTernary Family = "ternary"
)

// String returns the family name.
func (f Family) String() string { return string(f) }

// Error implements the error interface.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid entry count %d (must not be negative)", e.Count)
}

// Unwrap returns ErrInvalidCount so callers can use errors.Is for programmatic detection.
func (e *InvalidCountError) Unwrap() error { return ErrInvalidCount }

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("menu has %d entries but ternary tags address at most %d", e.Count, MaxTernaryEntries)
}

// Unwrap returns ErrCapacityExceeded so callers can use errors.Is for programmatic detection.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ForCount returns the codec for a menu of count entries: Decimal when
// numbered is true, Ternary otherwise. Ternary is the default family, so
// capacity is checked here, before any entry stream is built.
func ForCount(numbered bool, count int) (Codec, error) {
	if numbered {
		return NewDecimal(count)
	}
	return NewTernary(count)
}
