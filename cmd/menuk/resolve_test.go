// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/menuk/menuk/internal/config"
	"github.com/menuk/menuk/internal/issue"
	"github.com/menuk/menuk/internal/selector"
)

// numberedToolsMenu pairs display names with real tools. Resolve tests
// only print the commands, so nothing here ever executes.
const numberedToolsMenu = `
[[entries]]
name = "edit"
run = "vim"

[[entries]]
name = "build"
run = "make"

[config]
numbered = true
separator = ": "
`

// resolveApp builds an App whose selection arrives on stdin and whose
// selector must never run.
func resolveApp(t *testing.T, stdin string) *App {
	t.Helper()
	return NewApp(Dependencies{
		Config: stubConfigProvider{cfg: config.DefaultConfig()},
		Selector: func(context.Context, string, selector.Options) (string, error) {
			t.Error("resolve must not invoke the selector")
			return "", nil
		},
		Stdin: strings.NewReader(stdin),
	})
}

func TestResolve_PrintsCommands(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)
	app := resolveApp(t, "1: build\n")

	stdout, _, err := executeRoot(t, app, "resolve", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "make\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestResolve_MultiLineKeepsSelectionOrder(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)
	app := resolveApp(t, "1: build\n0: edit\n")

	stdout, _, err := executeRoot(t, app, "resolve", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "make\nvim\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestResolve_RunDispatches(t *testing.T) {
	path := writeMenu(t, numberedVirtualMenu)
	app := resolveApp(t, "1: build\n")

	stdout, _, err := executeRoot(t, app, "resolve", "--run", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "built\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestResolve_InvalidChoiceFailsBatch(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)
	app := resolveApp(t, "0: edit\nnonsense\n")

	stdout, stderr, err := executeRoot(t, app, "resolve", path)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("Execute() error = %v, want ExitError with code 1", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want no commands from an aborted batch", stdout)
	}
	if want := issue.InvalidChoiceId.String(); !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want mention of %q", stderr, want)
	}
}

func TestResolve_EmptySelection(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu)
	app := resolveApp(t, "  \n\n")

	stdout, _, err := executeRoot(t, app, "resolve", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty output for a blank selection", stdout)
	}
}

func TestResolve_AdHocLine(t *testing.T) {
	path := writeMenu(t, numberedToolsMenu+"ad_hoc = true\n")
	app := resolveApp(t, "cal -3\n")

	stdout, _, err := executeRoot(t, app, "resolve", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "cal -3\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}
