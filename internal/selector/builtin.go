// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// runBuiltin presents the stream's lines with the in-process picker. Picked
// lines come back exactly as presented, so resolution sees the same text an
// external selector would have echoed. Escape or ctrl+c dismisses the
// picker, which is an empty selection, not an error.
func runBuiltin(ctx context.Context, stream string, opts Options) (string, error) {
	lines := streamLines(stream)
	if len(lines) == 0 {
		return "", nil
	}

	huhOpts := make([]huh.Option[string], len(lines))
	for i, line := range lines {
		huhOpts[i] = huh.NewOption(line, line)
	}

	title := opts.Title
	if title == "" {
		title = "menuk"
	}

	if opts.Multi {
		var picked []string
		err := runPicker(ctx, opts, huh.NewMultiSelect[string]().
			Title(title).
			Options(huhOpts...).
			Value(&picked))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", nil
			}
			return "", &FailedError{Command: "builtin", Cause: err}
		}
		return joinSelections(picked), nil
	}

	var picked string
	err := runPicker(ctx, opts, huh.NewSelect[string]().
		Title(title).
		Options(huhOpts...).
		Value(&picked))
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", &FailedError{Command: "builtin", Cause: err}
	}
	return joinSelections([]string{picked}), nil
}

// runPicker drives a single-field form through its own bubbletea program,
// with Escape added to the quit keys to match how external selectors
// dismiss. The picker draws on stderr like a terminal selector would, so
// stdout stays clean for the resolved commands.
func runPicker(ctx context.Context, opts Options, field huh.Field) error {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	form := huh.NewForm(huh.NewGroup(field)).WithKeyMap(keyMap)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Stderr != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Stderr))
	}
	final, err := tea.NewProgram(form, progOpts...).Run()
	if err != nil {
		return err
	}
	if f, ok := final.(*huh.Form); ok && f.State == huh.StateAborted {
		return huh.ErrUserAborted
	}
	return nil
}

// streamLines splits the entry stream back into selectable lines.
func streamLines(stream string) []string {
	trimmed := strings.TrimSuffix(stream, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// joinSelections renders picked lines the way the resolver expects them:
// one per line, newline-terminated.
func joinSelections(picked []string) string {
	if len(picked) == 0 {
		return ""
	}
	return strings.Join(picked, "\n") + "\n"
}
