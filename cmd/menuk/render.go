// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRenderCommand creates the `menuk render` command. It prints the exact
// byte stream a selector would receive, which is the easiest way to check
// tags and separators without opening a menu.
func newRenderCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render [menu-file]",
		Short: "Print the entry stream a selector would receive",
		Long: `Print the entry stream a selector would receive, one tagged line per
menu entry, without running a selector.

The output is byte-identical to what the launcher pipes into dmenu, so
it can be fed to any dmenu-compatible program by hand:

  menuk render | dmenu | menuk resolve`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			state, err := prepareLaunch(cmd, app, path, true)
			if err != nil {
				return reportError(cmd, state, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), state.Session.Stream())
			return nil
		},
	}
}
