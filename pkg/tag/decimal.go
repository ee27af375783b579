// SPDX-License-Identifier: MPL-2.0

package tag

import "strconv"

// Decimal encodes entry indices as plain base-10 numbers. Tags have no
// fixed width; Decode instead consumes the longest run of leading digits,
// so "1" and "12" never collide even though one prefixes the other.
type Decimal struct {
	count int
}

// NewDecimal returns a decimal codec for a menu of count entries. The
// decimal family has no capacity limit.
func NewDecimal(count int) (*Decimal, error) {
	if count < 0 {
		return nil, &InvalidCountError{Count: count}
	}
	return &Decimal{count: count}, nil
}

// Family implements Codec.
func (d *Decimal) Family() Family { return FamilyDecimal }

// Encode implements Codec.
func (d *Decimal) Encode(index int) string { return strconv.Itoa(index) }

// Decode implements Codec. The maximal run of leading ASCII digits is read
// as one number: text with no leading digit, a number with no matching
// entry, or a digit run too large for the platform integer is not a tag.
func (d *Decimal) Decode(text string) (int, bool) {
	run := 0
	for run < len(text) && text[run] >= '0' && text[run] <= '9' {
		run++
	}
	if run == 0 {
		return 0, false
	}
	index, err := strconv.Atoi(text[:run])
	if err != nil || index >= d.count {
		return 0, false
	}
	return index, true
}

// SeparatorDefault implements Codec. Numbered menus read best with a space
// between the number and the entry name.
func (d *Decimal) SeparatorDefault() (string, bool) { return " ", true }
