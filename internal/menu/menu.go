// SPDX-License-Identifier: MPL-2.0

// Package menu turns a parsed menu into the text block a selector displays
// and maps the selector's output back to shell commands. Both directions
// run through one Session so the tag assignment cannot drift between what
// the user saw and what gets resolved.
package menu

import (
	"github.com/menuk/menuk/pkg/menufile"
	"github.com/menuk/menuk/pkg/tag"
)

// Session binds a menu's entries to the tag codec and separator of one
// launcher run.
type Session struct {
	entries   []menufile.Entry
	codec     tag.Codec
	separator string
}

// NewSession builds the session for one run. numbered picks the tag
// family, separator overrides its default separator (nil inherits it).
// Menus too large for the chosen family are rejected here, before any
// stream is rendered.
func NewSession(entries []menufile.Entry, numbered bool, separator *menufile.Separator) (*Session, error) {
	codec, err := tag.ForCount(numbered, len(entries))
	if err != nil {
		return nil, err
	}
	return &Session{
		entries:   entries,
		codec:     codec,
		separator: resolveSeparator(codec, separator),
	}, nil
}

// Codec returns the tag codec bound to this session.
func (s *Session) Codec() tag.Codec { return s.codec }

// Separator returns the resolved separator, "" when none.
func (s *Session) Separator() string { return s.separator }

// Len returns the number of entries in the session.
func (s *Session) Len() int { return len(s.entries) }

// resolveSeparator applies the separator precedence: an explicit menu
// value (including the "none" escape hatch) wins over the family default,
// and a family without a default yields no separator at all.
func resolveSeparator(codec tag.Codec, override *menufile.Separator) string {
	if override != nil {
		return override.Value()
	}
	if def, ok := codec.SeparatorDefault(); ok {
		return def
	}
	return ""
}
