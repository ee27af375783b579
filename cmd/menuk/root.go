// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for menuk.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/menuk/menuk/internal/issue"
	"github.com/menuk/menuk/internal/menu"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the menuk command tree. The root command itself is
// the launcher: it shows the menu and dispatches the selection.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "menuk [menu-file]",
		Short: "A dmenu launcher for arbitrary shell commands",
		Long: TitleStyle.Render("menuk") + SubtitleStyle.Render(" - a dmenu launcher for arbitrary shell commands") + `

menuk reads a TOML menu of named shell commands, shows the entries
through dmenu (or any dmenu-compatible selector), and runs whatever
the user picks. Every entry line starts with a short tag; the tag
alone identifies the entry, so a selection still resolves after the
rest of the line was edited or truncated.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'menuk init' to scaffold a menu.toml
  2. Add your commands to it
  3. Bind 'menuk' to a hotkey in your window manager

` + SubtitleStyle.Render("Examples:") + `
  menuk                     Show the menu from ./menu.toml
  menuk ~/menus/apps.toml   Show a specific menu
  menuk < menu.toml         Read the menu from a pipe
  menuk render              Print the entry stream without a selector
  menuk validate            Check a menu file without showing it`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runLaunch(cmd, app, path)
		},
	}

	addLaunchFlags(rootCmd)

	rootCmd.AddCommand(newRenderCommand(app))
	rootCmd.AddCommand(newResolveCommand(app))
	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// addLaunchFlags registers the persistent flags shared by the launcher and
// its subcommands. Each flag overrides the matching menu file or app config
// field; overridesFromFlags only forwards flags the user actually set.
func addLaunchFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolP("numbered", "n", false, "use decimal tags (0, 1, 2, ...) instead of letter tags")
	flags.Bool("ad-hoc", false, "run selector lines that match no tag verbatim")
	flags.StringP("separator", "s", "", "text between tag and entry name (\"none\" disables it)")
	flags.String("shell", "", "shell for the native runtime (default \"sh\")")
	flags.StringP("runtime", "r", "", "dispatch runtime: native or virtual")
	flags.String("selector", "", "selector program (default \"dmenu\")")
	flags.StringP("backend", "b", "", "selector backend: auto, command, or builtin")
	flags.BoolP("multi", "m", false, "allow the selector to return several lines")
	flags.String("config", "", "config file (default is the platform config dir)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
}

// overridesFromFlags collects the launch flags the user set into a menu
// override set. Unset flags stay nil so the menu file and app config keep
// their say.
func overridesFromFlags(cmd *cobra.Command) menu.Overrides {
	flags := cmd.Flags()

	var ov menu.Overrides
	if flags.Changed("numbered") {
		v, _ := flags.GetBool("numbered")
		ov.Numbered = &v
	}
	if flags.Changed("ad-hoc") {
		v, _ := flags.GetBool("ad-hoc")
		ov.AdHoc = &v
	}
	if flags.Changed("separator") {
		v, _ := flags.GetString("separator")
		ov.Separator = &v
	}
	if flags.Changed("shell") {
		v, _ := flags.GetString("shell")
		ov.Shell = &v
	}
	if flags.Changed("runtime") {
		v, _ := flags.GetString("runtime")
		ov.Runtime = &v
	}
	if flags.Changed("selector") {
		v, _ := flags.GetString("selector")
		ov.SelectorCommand = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		ov.Backend = &v
	}
	if flags.Changed("multi") {
		v, _ := flags.GetBool("multi")
		ov.Multi = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		ov.Verbose = &v
	}
	return ov
}

// configFlag returns the --config value, "" when unset.
func configFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// verboseFlag returns the --verbose value, false when unset.
func verboseFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

// getVersionString returns a formatted version string for display. Release
// builds inject Version via ldflags; go-install builds fall back to the
// module version recorded in the build info.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the command tree and runs it. This is called by
// main.main(). It only needs to happen once.
func Execute() {
	app := NewApp(Dependencies{})

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
