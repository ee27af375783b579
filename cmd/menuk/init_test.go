// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/menuk/menuk/pkg/menufile"
)

func TestInit_CreatesParsableMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")

	stdout, _, err := executeRoot(t, renderApp(t), "init", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Created") {
		t.Errorf("stdout = %q, want mention of %q", stdout, "Created")
	}

	m, err := menufile.Parse(path)
	if err != nil {
		t.Fatalf("Parse(starter menu) error = %v", err)
	}
	if len(m.Entries) != 4 {
		t.Errorf("len(Entries) = %d, want 4", len(m.Entries))
	}
	if m.Entries[0].Name != "terminal" {
		t.Errorf("Entries[0].Name = %q, want %q", m.Entries[0].Name, "terminal")
	}
}

func TestInit_DefaultFileName(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, _, err := executeRoot(t, renderApp(t), "init"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(menufile.DefaultFileName); err != nil {
		t.Errorf("Stat(%s) error = %v, want the starter file in place", menufile.DefaultFileName, err)
	}
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)

	_, _, err := executeRoot(t, renderApp(t), "init", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("Execute() error = %v, want refusal naming the existing file", err)
	}

	m, err := menufile.Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want the original menu untouched", len(m.Entries))
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)

	if _, _, err := executeRoot(t, renderApp(t), "init", "--force", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	m, err := menufile.Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Entries) != 4 {
		t.Errorf("len(Entries) = %d, want the starter entries", len(m.Entries))
	}
}
