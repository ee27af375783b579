// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/menuk/menuk/pkg/menufile"
)

const starterHeader = `# menuk menu file
# Each entry pairs a display name with the shell command it runs.
# See https://github.com/menuk/menuk for the full reference.

`

const starterFooter = `
# Per-menu settings. Uncomment to customize:
#
# [config]
# numbered = true      # decimal tags (0, 1, 2, ...) instead of letters
# separator = ": "     # text between tag and name ("none" disables it)
# ad_hoc = true        # run unmatched selector lines verbatim
# runtime = "virtual"  # interpret commands in-process instead of a shell
#
# [config.dmenu]
# prompt = "run"
# case_insensitive = true
`

// newInitCommand creates the `menuk init` command.
func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter menu file",
		Long: `Create a starter menu file with example entries.

The file is written as ` + menufile.DefaultFileName + ` in the current directory
unless a path argument says otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := menufile.DefaultFileName
			if len(args) > 0 {
				filename = args[0]
			}

			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("file %q already exists, use --force to overwrite", filename)
			}

			content, err := starterMenu()
			if err != nil {
				return err
			}
			if err := os.WriteFile(filename, content, 0o644); err != nil {
				return fmt.Errorf("failed to write menu file: %w", err)
			}

			absPath, _ := filepath.Abs(filename)
			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "%s Created %s\n", checkSuccessIcon, absPath)
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
			fmt.Fprintln(stdout, "  1. Edit the file and add your commands")
			fmt.Fprintln(stdout, "  2. Check it with 'menuk validate'")
			fmt.Fprintln(stdout, "  3. Bind 'menuk' to a hotkey in your window manager")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing menu file")

	return cmd
}

// starterMenu renders the scaffolded menu: example entries serialized
// through the same types the parser reads back, framed by commented
// guidance.
func starterMenu() ([]byte, error) {
	m := menufile.Menu{
		Entries: []menufile.Entry{
			{Name: "terminal", Run: "x-terminal-emulator"},
			{Name: "editor", Run: "vim"},
			{Name: "browser", Run: "firefox"},
			{Name: "lock screen", Run: "slock"},
		},
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to render starter menu: %w", err)
	}

	content := append([]byte(starterHeader), data...)
	return append(content, []byte(starterFooter)...), nil
}
