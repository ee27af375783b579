// SPDX-License-Identifier: MPL-2.0

package menu

import "strings"

// Stream renders the block of lines piped to the selector: one
// "<tag><separator><name>" line per entry, each terminated by a newline,
// in menu order. Entries are never sorted, deduplicated, filtered, or
// escaped: the resolver depends on line i carrying the tag of entry i,
// and a name that happens to contain the separator is still resolved by
// its tag alone.
func (s *Session) Stream() string {
	var b strings.Builder
	for i := range s.entries {
		b.WriteString(s.codec.Encode(i))
		b.WriteString(s.separator)
		b.WriteString(string(s.entries[i].Name))
		b.WriteByte('\n')
	}
	return b.String()
}
