// SPDX-License-Identifier: MPL-2.0

package tag

import "strings"

// ternaryAlphabet holds the three tag symbols, adjacent home-row keys with
// values a=0, s=1, d=2. The alphabet is fixed per build and is not
// user-configurable.
const ternaryAlphabet = "asd"

// MaxTernaryEntries is the largest menu the ternary family can address:
// 3^39, the widest power of three whose capacity still fits in a signed
// 64-bit counter.
const MaxTernaryEntries int64 = 4052555153018976267

const maxTernaryWidth = 39

// Ternary encodes entry indices as fixed-width words over a three-symbol
// alphabet. The width is the smallest that covers every entry of the menu
// and all tags are zero-padded to it, which keeps the family prefix-free:
// no tag is a prefix of another tag of the same build.
type Ternary struct {
	count int
	width int
}

// NewTernary returns a ternary codec for a menu of count entries. Menus
// beyond MaxTernaryEntries yield a CapacityError; the check runs here, at
// build time, so no entry stream is ever emitted for an unaddressable menu.
func NewTernary(count int) (*Ternary, error) {
	if count < 0 {
		return nil, &InvalidCountError{Count: count}
	}
	width := 1
	capacity := int64(3)
	for int64(count) > capacity {
		if width == maxTernaryWidth {
			return nil, &CapacityError{Count: count}
		}
		width++
		capacity *= 3
	}
	return &Ternary{count: count, width: width}, nil
}

// Width reports the fixed tag width in symbols.
func (t *Ternary) Width() int { return t.width }

// Family implements Codec.
func (t *Ternary) Family() Family { return FamilyTernary }

// Encode implements Codec. Tags are padded to the fixed width with the
// zero symbol.
func (t *Ternary) Encode(index int) string {
	buf := make([]byte, t.width)
	for pos := t.width - 1; pos >= 0; pos-- {
		buf[pos] = ternaryAlphabet[index%3]
		index /= 3
	}
	return string(buf)
}

// Decode implements Codec. Exactly width leading symbols are consumed:
// text shorter than the width, text with a foreign byte inside the tag
// window, or a word with no matching entry is not a tag.
func (t *Ternary) Decode(text string) (int, bool) {
	if len(text) < t.width {
		return 0, false
	}
	value := int64(0)
	for i := range t.width {
		digit := strings.IndexByte(ternaryAlphabet, text[i])
		if digit < 0 {
			return 0, false
		}
		value = value*3 + int64(digit)
	}
	if value >= int64(t.count) {
		return 0, false
	}
	return int(value), true
}

// SeparatorDefault implements Codec. Ternary menus keep the space so the
// tag stays visually distinct from the entry name.
func (t *Ternary) SeparatorDefault() (string, bool) { return " ", true }
