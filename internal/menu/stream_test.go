// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"strings"
	"testing"

	"github.com/menuk/menuk/pkg/menufile"
)

func TestStreamDecimalWithCustomSeparator(t *testing.T) {
	s, err := NewSession(testEntries(), true, sep(": "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	want := "0: edit\n1: build\n"
	if got := s.Stream(); got != want {
		t.Errorf("Stream() = %q, want %q", got, want)
	}
}

func TestStreamTernaryDefaults(t *testing.T) {
	entries := []menufile.Entry{
		{Name: "edit", Run: "vim"},
		{Name: "build", Run: "make"},
		{Name: "lock", Run: "loginctl lock-session"},
		{Name: "logout", Run: "loginctl terminate-user $USER"},
	}
	s, err := NewSession(entries, false, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	// Four entries force two-symbol tags, zero-padded.
	want := "aa edit\nas build\nad lock\nsa logout\n"
	if got := s.Stream(); got != want {
		t.Errorf("Stream() = %q, want %q", got, want)
	}
}

func TestStreamWithoutSeparator(t *testing.T) {
	s, err := NewSession(testEntries(), true, sep("none"))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	want := "0edit\n1build\n"
	if got := s.Stream(); got != want {
		t.Errorf("Stream() = %q, want %q", got, want)
	}
}

func TestStreamPreservesOrderAndContent(t *testing.T) {
	entries := []menufile.Entry{
		{Name: "zeta", Run: "z"},
		{Name: "zeta", Run: "z"},       // duplicates stay
		{Name: "  ", Run: "w"},         // whitespace-only names stay
		{Name: "a: b", Run: "colon"},   // separator inside a name stays verbatim
		{Name: "tab\there", Run: "t"},  // control characters are not escaped
	}
	s, err := NewSession(entries, true, sep(": "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	want := "0: zeta\n1: zeta\n2:   \n3: a: b\n4: tab\there\n"
	if got := s.Stream(); got != want {
		t.Errorf("Stream() = %q, want %q", got, want)
	}
}

func TestStreamEveryLineIsTerminated(t *testing.T) {
	s, err := NewSession(testEntries(), false, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	stream := s.Stream()
	if !strings.HasSuffix(stream, "\n") {
		t.Errorf("Stream() = %q, want trailing newline", stream)
	}
	if got := strings.Count(stream, "\n"); got != len(testEntries()) {
		t.Errorf("Stream() has %d newlines, want %d", got, len(testEntries()))
	}
}

func TestStreamTagsDecodeBackToTheirEntry(t *testing.T) {
	entries := make([]menufile.Entry, 30)
	for i := range entries {
		entries[i] = menufile.Entry{Name: "entry", Run: "true"}
	}
	for _, numbered := range []bool{true, false} {
		s, err := NewSession(entries, numbered, nil)
		if err != nil {
			t.Fatalf("NewSession(numbered=%v) error = %v", numbered, err)
		}
		lines := strings.Split(strings.TrimSuffix(s.Stream(), "\n"), "\n")
		if len(lines) != len(entries) {
			t.Fatalf("numbered=%v: %d lines, want %d", numbered, len(lines), len(entries))
		}
		for i, line := range lines {
			index, ok := s.Codec().Decode(line)
			if !ok || index != i {
				t.Fatalf("numbered=%v: Decode(line %d %q) = (%d, %v), want (%d, true)", numbered, i, line, index, ok, i)
			}
		}
	}
}
