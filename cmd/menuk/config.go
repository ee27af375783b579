// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/menuk/menuk/internal/config"
)

// newConfigCommand creates the `menuk config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage menuk configuration",
		Long: `Manage menuk configuration.

Configuration is stored in:
  - Linux: ~/.config/menuk/config.toml
  - macOS: ~/Library/Application Support/menuk/config.toml
  - Windows: %APPDATA%\menuk\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cfgCmd
}

// showConfig prints the configuration after all layers merged: file,
// environment, and defaults.
func showConfig(cmd *cobra.Command, app *App) error {
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: configFlag(cmd)})
	if err != nil {
		return reportError(cmd, nil, err)
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintln(stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(stdout)

	if path, pathErr := config.DefaultPath(); pathErr == nil && fileExistsCheck(path) {
		fmt.Fprintf(stdout, "%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(stdout)

	rendered, err := config.Render(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, rendered)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
