// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MenuFileNotFoundId Id = iota + 1
	MenuFileInvalidId
	CapacityExceededId
	InvalidChoiceId
	SelectorNotFoundId
	SelectorFailedId
	ShellNotFoundId
	ConfigInvalidId
	DispatchFailedId
)

// String returns the stable identifier printed to users, e.g. "MENUK-E004".
// The numeric part never changes once an id has shipped.
func (i Id) String() string {
	return fmt.Sprintf("MENUK-E%03d", int(i))
}

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			md += "\n- <" + string(link) + ">"
		}
	}
	return render(md, stylePath)
}

// docLink builds the documentation page URL for an issue id.
func docLink(id Id) HttpLink {
	return HttpLink("https://github.com/menuk/menuk/wiki/" + id.String())
}

var (
	render = glamour.Render

	menuFileNotFoundIssue = &Issue{
		id:       MenuFileNotFoundId,
		docLinks: []HttpLink{docLink(MenuFileNotFoundId)},
		mdMsg: `
# No menu file found!

We searched for a menu file but couldn't find one in the expected locations.

## Search locations (in order of precedence):
1. The path given on the command line
2. menu.toml in the current directory
3. ~/.config/menuk/menu.toml

## Things you can try:
- Scaffold a starter menu in the current directory:
~~~
$ menuk init
~~~

- Or point menuk at an existing file:
~~~
$ menuk /path/to/menu.toml
~~~

- Or pipe a menu over stdin:
~~~
$ menuk < menu.toml
~~~`,
	}

	menuFileInvalidIssue = &Issue{
		id:       MenuFileInvalidId,
		docLinks: []HttpLink{docLink(MenuFileInvalidId)},
		extLinks: []HttpLink{"https://toml.io/en/v1.0.0"},
		mdMsg: `
# Failed to parse menu file!

Your menu file contains syntax errors or invalid configuration.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- Unknown field names (the file is checked against a closed schema)
- Empty entry names or run commands
- Invalid values for known fields (runtime must be "native" or "virtual")

## Things you can try:
- Check the error message above for the offending field
- Validate the file without showing a menu:
~~~
$ menuk validate menu.toml
~~~

## Example of a valid menu file:
~~~toml
[[entries]]
name = "edit"
run = "vim"

[[entries]]
name = "build"
run = "make"

[config]
numbered = true
separator = ": "
~~~`,
	}

	capacityExceededIssue = &Issue{
		id:       CapacityExceededId,
		docLinks: []HttpLink{docLink(CapacityExceededId)},
		mdMsg: `
# Menu too large for letter tags!

This menu has more entries than the letter-tag alphabet can address, so
menuk cannot assign a unique tag to every entry.

## Things you can try:
- Switch the menu to numbered tags, which have no practical limit:
~~~toml
[config]
numbered = true
~~~

- Or split the menu into smaller menu files`,
	}

	invalidChoiceIssue = &Issue{
		id:       InvalidChoiceId,
		docLinks: []HttpLink{docLink(InvalidChoiceId)},
		mdMsg: `
# Cannot resolve your choice!

The selector returned text that doesn't start with the tag of any menu
entry, and free-text commands are disabled for this menu. When any line
of a selection cannot be resolved, the whole selection is discarded and
nothing runs.

## Things you can try:
- Pick one of the listed entries instead of typing free text
- Or allow free-text commands for this menu:
~~~toml
[config]
ad_hoc = true
~~~

With ad_hoc enabled, unrecognized lines run verbatim as shell commands.`,
	}

	selectorNotFoundIssue = &Issue{
		id:       SelectorNotFoundId,
		docLinks: []HttpLink{docLink(SelectorNotFoundId)},
		extLinks: []HttpLink{"https://tools.suckless.org/dmenu/"},
		mdMsg: `
# Selector not found!

The selector program could not be found on your PATH.

## Things you can try:
- Install dmenu:
  - Debian/Ubuntu: ` + "`sudo apt install dmenu`" + `
  - Fedora: ` + "`sudo dnf install dmenu`" + `
  - Arch: ` + "`sudo pacman -S dmenu`" + `

- Or configure a different selector in ~/.config/menuk/config.toml:
~~~toml
[selector]
command = "rofi"
args = ["-dmenu"]
~~~

- Or use the built-in terminal picker:
~~~
$ menuk --backend builtin
~~~`,
	}

	selectorFailedIssue = &Issue{
		id:       SelectorFailedId,
		docLinks: []HttpLink{docLink(SelectorFailedId)},
		mdMsg: `
# Selector failed to start!

The selector program was found but could not be started, or its
input/output pipes broke while the menu was shown.

## Common causes:
- No display server available (dmenu needs a running X11 session)
- The selector binary is not executable
- The selector crashed while reading the menu

## Things you can try:
- Run the selector by hand to see its own error output:
~~~
$ echo hello | dmenu
~~~

- Inside a terminal-only session, use the built-in picker:
~~~
$ menuk --backend builtin
~~~

- Run with verbose mode to see the exact selector invocation:
~~~
$ menuk --verbose
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id:       ShellNotFoundId,
		docLinks: []HttpLink{docLink(ShellNotFoundId)},
		mdMsg: `
# Shell not found!

Could not find the shell configured for running menu commands.

## Where the shell comes from (in order of precedence):
1. The --shell flag
2. The menu file's config.shell field
3. The app config's shell field
4. "sh" as the fallback

## Things you can try:
- Install the configured shell, or fix its spelling
- Clear the shell override to fall back to sh
- Use the virtual runtime, which needs no system shell at all:
~~~toml
[config]
runtime = "virtual"
~~~`,
	}

	configInvalidIssue = &Issue{
		id:       ConfigInvalidId,
		docLinks: []HttpLink{docLink(ConfigInvalidId)},
		mdMsg: `
# Failed to load configuration!

Could not load the menuk configuration file.

## Configuration file locations:
- Linux: ~/.config/menuk/config.toml
- macOS: ~/Library/Application Support/menuk/config.toml
- Windows: %AppData%\menuk\config.toml

## Things you can try:
- Print the path menuk is reading:
~~~
$ menuk config path
~~~

- Check the file against the rendered defaults:
~~~
$ menuk config show
~~~

- Remove the config file to use defaults

## Example configuration:
~~~toml
shell = "sh"
runtime = "native"

[selector]
command = "dmenu"
args = ["-i"]

[ui]
color_scheme = "auto"
~~~`,
	}

	dispatchFailedIssue = &Issue{
		id:       DispatchFailedId,
		docLinks: []HttpLink{docLink(DispatchFailedId)},
		mdMsg: `
# Command dispatch failed!

Your choice was resolved, but the resulting command could not be handed
to the runtime.

## Common causes:
- The shell exited before accepting the command (native runtime)
- The command has a shell syntax error (virtual runtime)
- A sandboxed menuk build could not reach the host session

## Things you can try:
- Run the command by hand in your shell
- Run with verbose mode to see what was dispatched:
~~~
$ menuk --verbose
~~~

- Inside Flatpak or Snap, make sure host access is granted
  (menuk wraps host commands with flatpak-spawn --host)`,
	}

	issues = map[Id]*Issue{
		menuFileNotFoundIssue.Id(): menuFileNotFoundIssue,
		menuFileInvalidIssue.Id():  menuFileInvalidIssue,
		capacityExceededIssue.Id(): capacityExceededIssue,
		invalidChoiceIssue.Id():    invalidChoiceIssue,
		selectorNotFoundIssue.Id(): selectorNotFoundIssue,
		selectorFailedIssue.Id():   selectorFailedIssue,
		shellNotFoundIssue.Id():    shellNotFoundIssue,
		configInvalidIssue.Id():    configInvalidIssue,
		dispatchFailedIssue.Id():   dispatchFailedIssue,
	}
)

// Values returns all registered issues ordered by id.
func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
