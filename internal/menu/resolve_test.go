// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"errors"
	"slices"
	"testing"

	"github.com/menuk/menuk/pkg/menufile"
)

func TestResolveTaggedLine(t *testing.T) {
	s, err := NewSession(testEntries(), true, sep(": "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"full selector line", "1: build", []string{"make"}},
		{"bare tag", "1", []string{"make"}},
		{"edited trailing text is ignored", "1: build it now please", []string{"make"}},
		{"truncated name still resolves", "0: ed", []string{"vim"}},
		{"surrounding whitespace is trimmed first", "  1: build  \n", []string{"make"}},
		{"empty output means no selection", "", nil},
		{"whitespace-only output means no selection", " \n\t\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Resolve(tt.raw, false)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.raw, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveAdHocGating(t *testing.T) {
	s, err := NewSession(testEntries(), true, sep(": "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	t.Run("unmatched line fails when ad-hoc is disabled", func(t *testing.T) {
		_, err := s.Resolve("whatever", false)
		if !errors.Is(err, ErrInvalidChoice) {
			t.Fatalf("Resolve() error = %v, want ErrInvalidChoice", err)
		}
		var choiceErr *InvalidChoiceError
		if !errors.As(err, &choiceErr) {
			t.Fatalf("Resolve() error = %T, want *InvalidChoiceError", err)
		}
		if choiceErr.Choice != "whatever" {
			t.Errorf("Choice = %q, want %q", choiceErr.Choice, "whatever")
		}
	})

	t.Run("unmatched line runs verbatim when ad-hoc is enabled", func(t *testing.T) {
		got, err := s.Resolve("whatever", true)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !slices.Equal(got, []string{"whatever"}) {
			t.Errorf("Resolve() = %v, want [whatever]", got)
		}
	})

	t.Run("ad-hoc lines are trimmed but otherwise verbatim", func(t *testing.T) {
		got, err := s.Resolve("  echo 'a: b'  ", true)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !slices.Equal(got, []string{"echo 'a: b'"}) {
			t.Errorf("Resolve() = %v, want the trimmed command", got)
		}
	})
}

func TestResolveMultiLineBatch(t *testing.T) {
	s, err := NewSession(testEntries(), true, sep(": "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	t.Run("commands come back in selection order", func(t *testing.T) {
		got, err := s.Resolve("1: build\n0: edit\n", false)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !slices.Equal(got, []string{"make", "vim"}) {
			t.Errorf("Resolve() = %v, want [make vim]", got)
		}
	})

	t.Run("blank lines between selections are dropped", func(t *testing.T) {
		got, err := s.Resolve("0: edit\n\n \n1: build\n", false)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !slices.Equal(got, []string{"vim", "make"}) {
			t.Errorf("Resolve() = %v, want [vim make]", got)
		}
	})

	t.Run("tagged and ad-hoc lines mix in one batch", func(t *testing.T) {
		got, err := s.Resolve("0: edit\nnotify-send done\n", true)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !slices.Equal(got, []string{"vim", "notify-send done"}) {
			t.Errorf("Resolve() = %v, want [vim notify-send done]", got)
		}
	})

	t.Run("one bad line aborts the whole batch", func(t *testing.T) {
		got, err := s.Resolve("0: edit\nbogus\n1: build\n", false)
		if !errors.Is(err, ErrInvalidChoice) {
			t.Fatalf("Resolve() error = %v, want ErrInvalidChoice", err)
		}
		if got != nil {
			t.Errorf("Resolve() = %v, want no commands on batch failure", got)
		}
	})
}

func TestResolveTernarySession(t *testing.T) {
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

	got, err := s.Resolve("sa logout", false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !slices.Equal(got, []string{"loginctl terminate-user $USER"}) {
		t.Errorf("Resolve() = %v, want the logout command", got)
	}

	// "dd" is inside the tag width but addresses no entry.
	if _, err := s.Resolve("dd", false); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Resolve(out of range tag) error = %v, want ErrInvalidChoice", err)
	}
}

func TestResolveDuplicateNamesAreDistinguishedByTag(t *testing.T) {
	entries := []menufile.Entry{
		{Name: "deploy", Run: "deploy --env staging"},
		{Name: "deploy", Run: "deploy --env prod"},
	}
	s, err := NewSession(entries, true, sep(" "))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	got, err := s.Resolve("1 deploy", false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !slices.Equal(got, []string{"deploy --env prod"}) {
		t.Errorf("Resolve() = %v, want the second deploy command", got)
	}
}
