// SPDX-License-Identifier: MPL-2.0

package menufile

// SeparatorNone is the literal a menu writes to disable the separator even
// when the active tag family declares a default. A menu that genuinely
// wants the text "none" between tag and name cannot have it; that
// limitation is accepted to keep the config surface a single string.
const SeparatorNone Separator = "none"

// Separator is the text placed between a tag and the entry name in the
// selector stream. When the field is absent from the menu file the tag
// family's default applies; see Value for the "none" escape hatch.
type Separator string

// String returns the string representation of the Separator.
func (s Separator) String() string { return string(s) }

// IsNone reports whether the separator explicitly disables itself.
func (s Separator) IsNone() bool { return s == SeparatorNone }

// Value returns the text to emit between tag and name: the separator
// itself, or "" when the menu asked for none.
func (s Separator) Value() string {
	if s.IsNone() {
		return ""
	}
	return string(s)
}
