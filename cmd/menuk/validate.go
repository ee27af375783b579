// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menuk/menuk/internal/menu"
	"github.com/menuk/menuk/pkg/menufile"
	"github.com/menuk/menuk/pkg/tag"
)

// newValidateCommand creates the `menuk validate` command. It runs the
// whole launcher front half, schema, settings merge, and tag assignment,
// and reports each check instead of opening a menu.
func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [menu-file]",
		Short: "Validate a menu file without showing it",
		Long: `Validate a menu file without showing a menu.

The file is checked the way the launcher would use it: TOML syntax and
schema, the settings merge with the app config and any flags, and the
tag assignment for the entry count. Each check reports on its own so
all problems surface in one pass.

Examples:
  menuk validate                   Validate the discovered menu file
  menuk validate ./menu.toml       Validate a specific file
  menuk validate < menu.toml       Validate a piped menu definition`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runMenuValidation(cmd, app, path)
		},
	}
}

// runMenuValidation performs the check-by-check validation and renders
// styled results.
func runMenuValidation(cmd *cobra.Command, app *App, path string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	fmt.Fprintln(stdout, checkTitleStyle.Render("Menu Validation"))

	var (
		m   *menufile.Menu
		err error
	)
	if path == "" && app.stdinIsPipe() {
		fmt.Fprintf(stdout, "%s Source: %s\n", checkInfoIcon, checkPathStyle.Render("<stdin>"))
		fmt.Fprintln(stdout)
		m, err = menufile.ParseReader(app.stdin, "")
	} else {
		located, locateErr := menufile.Locate(path)
		if locateErr != nil {
			fmt.Fprintf(stderr, "%s No menu file found\n", checkErrorIcon)
			fmt.Fprintln(stderr)
			fmt.Fprintf(stderr, "  %s\n", locateErr)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}
		fmt.Fprintf(stdout, "%s Path: %s\n", checkInfoIcon, checkPathStyle.Render(located))
		fmt.Fprintln(stdout)
		m, err = menufile.Parse(located)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s Schema validation failed\n", checkErrorIcon)
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "  %s\n", err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(stdout, "%s Schema validation passed\n", checkSuccessIcon)

	cfg, err := loadAppConfig(cmd, app)
	if err != nil {
		return reportError(cmd, nil, err)
	}
	settings, err := menu.ResolveSettings(cfg, m.Config, overridesFromFlags(cmd))
	if err != nil {
		fmt.Fprintf(stderr, "%s Settings merge failed\n", checkErrorIcon)
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "  %s\n", err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(stdout, "%s Settings merge passed\n", checkSuccessIcon)

	session, err := menu.NewSession(m.Entries, settings.Numbered, settings.Separator)
	if err != nil {
		fmt.Fprintf(stderr, "%s Tag assignment failed\n", checkErrorIcon)
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "  %s\n", err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(stdout, "%s Tag capacity check passed\n", checkSuccessIcon)

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s Menu is valid (%s)\n", checkSuccessIcon, describeSession(session))
	return nil
}

// describeSession summarizes a session for the validation report, e.g.
// "4 entries, ternary tags, width 2".
func describeSession(session *menu.Session) string {
	codec := session.Codec()
	summary := fmt.Sprintf("%d entries, %s tags", session.Len(), codec.Family())
	if ternary, ok := codec.(*tag.Ternary); ok {
		summary += fmt.Sprintf(", width %d", ternary.Width())
	}
	return summary
}
