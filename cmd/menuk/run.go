// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/menuk/menuk/internal/config"
	"github.com/menuk/menuk/internal/issue"
	"github.com/menuk/menuk/internal/menu"
	"github.com/menuk/menuk/internal/runtime"
	"github.com/menuk/menuk/internal/selector"
	"github.com/menuk/menuk/pkg/menufile"
)

// launchState carries everything the front half of a launcher run
// produces: the loaded menu, the merged settings, the tag session, and the
// app config the merge was based on.
type launchState struct {
	Menu     *menufile.Menu
	Settings menu.Settings
	Session  *menu.Session
	Config   *config.Config
}

// runLaunch is the launcher flow behind the bare menuk invocation: load
// the menu, show it through the selector, resolve the selection, and
// dispatch the resolved commands.
func runLaunch(cmd *cobra.Command, app *App, menuPath string) error {
	state, err := prepareLaunch(cmd, app, menuPath, true)
	if err != nil {
		return reportError(cmd, state, err)
	}

	prompt := ""
	if state.Menu.Config.Dmenu != nil {
		prompt = state.Menu.Config.Dmenu.Prompt
	}

	selection, err := app.Selector(cmd.Context(), state.Session.Stream(), selector.Options{
		Command: state.Settings.SelectorCommand,
		Args:    state.Settings.SelectorArgs,
		Backend: selector.Backend(state.Settings.Backend),
		Multi:   state.Settings.Multi,
		Title:   prompt,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return reportError(cmd, state, wrapSelectorError(err, state.Settings.SelectorCommand))
	}

	commands, err := state.Session.Resolve(selection, state.Settings.AdHoc)
	if err != nil {
		return reportError(cmd, state, wrapResolveError(err))
	}
	if len(commands) == 0 {
		// The selector was dismissed. Running nothing is the correct
		// outcome, not an error.
		log.Debug("selector returned no selection")
		return nil
	}

	return dispatchCommands(cmd, app, state, commands)
}

// prepareLaunch runs the shared front half of every launcher-shaped
// command: load the app config, load the menu, merge the settings, and
// build the tag session. Returned errors are already issue-wrapped;
// callers hand them to reportError.
func prepareLaunch(cmd *cobra.Command, app *App, menuPath string, allowStdinMenu bool) (*launchState, error) {
	cfg, err := loadAppConfig(cmd, app)
	if err != nil {
		return nil, err
	}

	m, err := app.loadMenu(menuPath, allowStdinMenu)
	if err != nil {
		return nil, err
	}

	settings, err := menu.ResolveSettings(cfg, m.Config, overridesFromFlags(cmd))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("merge settings").
			WithSuggestion("Check the flag values against 'menuk --help'").
			WithIssueId(issue.ConfigInvalidId).
			Wrap(err).
			BuildError()
	}

	if settings.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("resolved settings",
		"numbered", settings.Numbered,
		"ad_hoc", settings.AdHoc,
		"runtime", settings.Runtime,
		"selector", settings.SelectorCommand,
		"backend", settings.Backend)

	session, err := menu.NewSession(m.Entries, settings.Numbered, settings.Separator)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("assign entry tags").
			WithResource(m.FilePath).
			WithSuggestion("Set 'numbered = true' to switch to decimal tags").
			WithIssueId(issue.CapacityExceededId).
			Wrap(err).
			BuildError()
	}

	return &launchState{Menu: m, Settings: settings, Session: session, Config: cfg}, nil
}

// loadAppConfig loads the application configuration. A failing default
// lookup degrades to a warning plus defaults so the launcher stays usable;
// an explicit --config path must work and aborts when it does not.
func loadAppConfig(cmd *cobra.Command, app *App) (*config.Config, error) {
	path := configFlag(cmd)
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: path})
	if err != nil {
		if path != "" {
			return nil, err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verboseFlag(cmd)))
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// dispatchCommands hands the resolved commands to the configured runtime
// and converts the result into the process exit status.
func dispatchCommands(cmd *cobra.Command, app *App, state *launchState, commands []string) error {
	for _, command := range commands {
		log.Debug("dispatching", "runtime", state.Settings.Runtime, "command", command)
	}

	result := app.Runtimes.Dispatch(runtime.Mode(state.Settings.Runtime), &runtime.DispatchContext{
		Context:  cmd.Context(),
		Commands: commands,
		Shell:    state.Settings.Shell,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	})
	if result.Error != nil {
		return reportError(cmd, state, wrapDispatchError(result.Error))
	}
	if !result.ExitCode.IsSuccess() {
		// A command ran and failed on its own terms; its output already
		// told the user why. Propagate the code without re-reporting.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// wrapSelectorError attaches the matching issue page to a selector failure.
func wrapSelectorError(err error, command string) error {
	id := issue.SelectorFailedId
	if errors.Is(err, selector.ErrNotFound) {
		id = issue.SelectorNotFoundId
	}
	return issue.NewErrorContext().
		WithOperation("run selector").
		WithResource(command).
		WithSuggestion("Try the builtin picker: menuk --backend builtin").
		WithIssueId(id).
		Wrap(err).
		BuildError()
}

// wrapResolveError attaches the invalid-choice issue page to a resolution
// failure.
func wrapResolveError(err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("resolve selection").
		WithSuggestion("Pick a listed entry, or enable ad_hoc for free-text commands").
		WithIssueId(issue.InvalidChoiceId)

	var choiceErr *menu.InvalidChoiceError
	if errors.As(err, &choiceErr) {
		ctx = ctx.WithResource(choiceErr.Choice)
	}
	return ctx.Wrap(err).BuildError()
}

// wrapDispatchError attaches the matching issue page to a dispatch failure.
func wrapDispatchError(err error) error {
	id := issue.DispatchFailedId
	if errors.Is(err, runtime.ErrShellNotFound) {
		id = issue.ShellNotFoundId
	}
	return issue.NewErrorContext().
		WithOperation("dispatch commands").
		WithSuggestion("Run with --verbose to see what was dispatched").
		WithIssueId(id).
		Wrap(err).
		BuildError()
}

// reportError prints the diagnostic for a failed run and converts err into
// the process exit status. In verbose mode the registry page of the issue
// is rendered below the message. state may be nil when the failure struck
// before the settings were merged.
func reportError(cmd *cobra.Command, state *launchState, err error) error {
	verbose := verboseFlag(cmd)
	scheme := config.ColorSchemeAuto
	if state != nil {
		verbose = state.Settings.Verbose
		scheme = state.Config.UI.ColorScheme
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if verbose && errors.As(err, &ae) {
		if page := ae.Page(); page != nil {
			if rendered, renderErr := page.Render(scheme.String()); renderErr == nil {
				fmt.Fprintln(stderr)
				fmt.Fprint(stderr, rendered)
			}
		}
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1}
}
