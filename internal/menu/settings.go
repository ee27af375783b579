// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"slices"
	"strings"

	"github.com/menuk/menuk/internal/config"
	"github.com/menuk/menuk/pkg/menufile"
)

type (
	// Settings is the effective configuration for one menu run, merged from
	// CLI flags, the menu file's config block, the app config, and built-in
	// defaults, in that order of precedence.
	Settings struct {
		// Numbered selects decimal tags instead of letter tags.
		Numbered bool
		// AdHoc lets selection lines that match no tag run verbatim.
		AdHoc bool
		// Separator overrides the tag family's default separator when non-nil.
		Separator *menufile.Separator
		// Shell is the shell used by the native runtime.
		Shell string
		// Runtime is the dispatch runtime for resolved commands.
		Runtime config.RuntimeMode
		// SelectorCommand is the external selector program.
		SelectorCommand string
		// SelectorArgs are the arguments for the selector invocation:
		// app config args first, then the menu file's dmenu options.
		SelectorArgs []string
		// Backend picks between the external command and the builtin picker.
		Backend config.Backend
		// Multi allows the selector to return more than one line.
		Multi bool
		// Verbose enables debug logging.
		Verbose bool
	}

	// Overrides carries explicit CLI flag values into the merge. A nil
	// field means the flag was not given on the command line.
	Overrides struct {
		Numbered        *bool
		AdHoc           *bool
		Separator       *string
		Shell           *string
		Runtime         *string
		SelectorCommand *string
		Backend         *string
		Multi           *bool
		Verbose         *bool
	}
)

// ResolveSettings merges the configuration layers into the effective
// Settings for one run. cfg must be non-nil; pass config.DefaultConfig()
// when no app config was loaded.
func ResolveSettings(cfg *config.Config, mc menufile.MenuConfig, ov Overrides) (Settings, error) {
	s := Settings{
		Shell:           cfg.Shell,
		Runtime:         cfg.Runtime,
		SelectorCommand: cfg.Selector.Command.String(),
		SelectorArgs:    slices.Clone(cfg.Selector.Args),
		Backend:         cfg.Selector.Backend,
		Multi:           cfg.Selector.Multi,
		Verbose:         cfg.UI.Verbose,
	}

	// Menu file layer.
	if mc.Numbered != nil {
		s.Numbered = *mc.Numbered
	}
	if mc.AdHoc != nil {
		s.AdHoc = *mc.AdHoc
	}
	if mc.Separator != nil {
		sepVal := *mc.Separator
		s.Separator = &sepVal
	}
	if strings.TrimSpace(mc.Shell) != "" {
		s.Shell = mc.Shell
	}
	if mc.Runtime != "" {
		s.Runtime = config.RuntimeMode(mc.Runtime)
	}
	if mc.Dmenu != nil {
		s.SelectorArgs = append(s.SelectorArgs, mc.Dmenu.Argv()...)
	}

	// CLI layer.
	if ov.Numbered != nil {
		s.Numbered = *ov.Numbered
	}
	if ov.AdHoc != nil {
		s.AdHoc = *ov.AdHoc
	}
	if ov.Separator != nil {
		sepVal := menufile.Separator(*ov.Separator)
		s.Separator = &sepVal
	}
	if ov.Shell != nil {
		s.Shell = *ov.Shell
	}
	if ov.Runtime != nil {
		s.Runtime = config.RuntimeMode(*ov.Runtime)
	}
	if ov.SelectorCommand != nil {
		s.SelectorCommand = *ov.SelectorCommand
	}
	if ov.Backend != nil {
		s.Backend = config.Backend(*ov.Backend)
	}
	if ov.Multi != nil {
		s.Multi = *ov.Multi
	}
	if ov.Verbose != nil {
		s.Verbose = *ov.Verbose
	}

	// The menu file was schema-checked and the app config validated on
	// load, but flag values arrive unchecked and land here.
	if err := s.Runtime.Validate(); err != nil {
		return Settings{}, err
	}
	if err := s.Backend.Validate(); err != nil {
		return Settings{}, err
	}
	if strings.TrimSpace(s.Shell) == "" {
		return Settings{}, &config.InvalidShellError{Value: s.Shell}
	}
	if err := config.SelectorCommand(s.SelectorCommand).Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}
