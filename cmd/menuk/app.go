// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/menuk/menuk/internal/config"
	"github.com/menuk/menuk/internal/issue"
	"github.com/menuk/menuk/internal/runtime"
	"github.com/menuk/menuk/internal/selector"
	"github.com/menuk/menuk/pkg/menufile"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every command constructor receives an App and
	// delegates through its fields, which is what lets tests swap the
	// selector, the runtimes, or stdin for doubles.
	App struct {
		// Config loads the application configuration.
		Config ConfigProvider
		// Selector presents the entry stream and returns the raw selection.
		Selector SelectorFunc
		// Runtimes dispatches resolved commands.
		Runtimes *runtime.Registry

		stdin       io.Reader
		stdinIsPipe func() bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      ConfigProvider
		Selector    SelectorFunc
		Runtimes    *runtime.Registry
		Stdin       io.Reader
		StdinIsPipe func() bool
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock
	// implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// SelectorFunc shows the entry stream to the user and returns whatever
	// the selector printed. It matches the signature of selector.Run.
	SelectorFunc func(ctx context.Context, stream string, opts selector.Options) (string, error)
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Selector == nil {
		deps.Selector = selector.Run
	}
	if deps.Runtimes == nil {
		deps.Runtimes = runtime.NewDefaultRegistry()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.StdinIsPipe == nil {
		deps.StdinIsPipe = stdinIsPipe
	}

	return &App{
		Config:      deps.Config,
		Selector:    deps.Selector,
		Runtimes:    deps.Runtimes,
		stdin:       deps.Stdin,
		stdinIsPipe: deps.StdinIsPipe,
	}
}

// stdinIsPipe reports whether stdin carries piped data rather than an
// interactive terminal.
func stdinIsPipe() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// loadMenu loads the menu for one invocation. An explicit path wins; with
// no path, piped stdin is read as a menu definition when allowStdin is set,
// and the discovery locations (./menu.toml, then the user config directory)
// are searched otherwise. Commands whose stdin carries other data, like
// resolve reading a selection, pass allowStdin=false.
func (a *App) loadMenu(path string, allowStdin bool) (*menufile.Menu, error) {
	if path == "" && allowStdin && a.stdinIsPipe() {
		m, err := menufile.ParseReader(a.stdin, "")
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("parse menu definition").
				WithResource("<stdin>").
				WithSuggestion("Check the piped TOML with 'menuk validate <file>'").
				WithIssueId(issue.MenuFileInvalidId).
				Wrap(err).
				BuildError()
		}
		return m, nil
	}

	located, err := menufile.Locate(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("find menu file").
			WithSuggestion("Run 'menuk init' to scaffold one").
			WithSuggestion("Or pass the path of an existing menu file").
			WithIssueId(issue.MenuFileNotFoundId).
			Wrap(err).
			BuildError()
	}

	m, err := menufile.Parse(located)
	if err != nil {
		// Locate returns explicit paths unchecked, so a missing file
		// surfaces here as a read error rather than a lookup failure.
		if errors.Is(err, os.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("read menu file").
				WithResource(located).
				WithSuggestion("Check the path for typos").
				WithIssueId(issue.MenuFileNotFoundId).
				Wrap(err).
				BuildError()
		}
		return nil, issue.NewErrorContext().
			WithOperation("parse menu file").
			WithResource(located).
			WithSuggestion("Run 'menuk validate' for the full diagnostic").
			WithIssueId(issue.MenuFileInvalidId).
			Wrap(err).
			BuildError()
	}
	return m, nil
}
