// SPDX-License-Identifier: MPL-2.0

package menufile

import "testing"

func TestSeparatorValue(t *testing.T) {
	tests := []struct {
		name  string
		value Separator
		want  string
	}{
		{"custom separator", ": ", ": "},
		{"dash separator", "-", "-"},
		{"explicit none yields nothing", SeparatorNone, ""},
		{"empty custom yields nothing", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Value(); got != tt.want {
				t.Errorf("Separator(%q).Value() = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSeparatorIsNone(t *testing.T) {
	if !SeparatorNone.IsNone() {
		t.Error(`Separator("none").IsNone() = false, want true`)
	}
	if Separator(": ").IsNone() {
		t.Error(`Separator(": ").IsNone() = true, want false`)
	}
}
