// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menuk/menuk/internal/issue"
)

// newResolveCommand creates the `menuk resolve` command. It reads selector
// output from stdin and maps it back to the commands it selects, which
// makes the tag resolution scriptable:
//
//	menuk render | dmenu | menuk resolve --run
func newResolveCommand(app *App) *cobra.Command {
	var run bool

	cmd := &cobra.Command{
		Use:   "resolve [menu-file]",
		Short: "Map selector output on stdin to the commands it selects",
		Long: `Read selector output from stdin and print the shell commands it
resolves to, one per line, in selection order.

Each non-empty input line resolves on its own: a line starting with a
valid tag selects that entry's command, any other line runs verbatim
when the menu allows ad-hoc commands. One unresolvable line discards
the whole selection.

Because stdin carries the selection, the menu itself always comes from
the path argument or the usual lookup locations, never from the pipe.

Examples:
  menuk render | dmenu | menuk resolve          Print the selected commands
  menuk render | dmenu | menuk resolve --run    Dispatch them instead
  echo "1: build" | menuk resolve --numbered    Resolve a selection by hand`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			state, err := prepareLaunch(cmd, app, path, false)
			if err != nil {
				return reportError(cmd, state, err)
			}

			raw, err := io.ReadAll(app.stdin)
			if err != nil {
				return reportError(cmd, state, issue.WrapWithOperation(err, "read selection"))
			}

			commands, err := state.Session.Resolve(string(raw), state.Settings.AdHoc)
			if err != nil {
				return reportError(cmd, state, wrapResolveError(err))
			}
			if len(commands) == 0 {
				return nil
			}

			if !run {
				stdout := cmd.OutOrStdout()
				for _, command := range commands {
					fmt.Fprintln(stdout, command)
				}
				return nil
			}

			return dispatchCommands(cmd, app, state, commands)
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, "dispatch the resolved commands instead of printing them")

	return cmd
}
