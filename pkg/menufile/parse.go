// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/menuk/menuk/pkg/cueutil"
)

//go:embed menufile_schema.cue
var menufileSchema []byte

const (
	// DefaultFileName is the menu file looked up when no path is given.
	DefaultFileName = "menu.toml"
	// MaxFileSize caps how much menu file the parser reads.
	MaxFileSize = cueutil.DefaultMaxFileSize
)

// ErrMenuNotFound is returned by Locate when no menu file exists in any
// lookup location.
var ErrMenuNotFound = errors.New("menu file not found")

// Parse loads and validates the menu file at path.
func Parse(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return ParseBytes(data, path)
}

// ParseReader loads and validates a menu definition from r, typically a
// pipe. path only labels error messages and may be empty.
func ParseReader(r io.Reader, path string) (*Menu, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read menu definition: %w", err)
	}
	return ParseBytes(data, path)
}

// ParseBytes validates data as a TOML menu definition: unmarshal into
// plain data, unify with the embedded CUE schema, decode into the typed
// Menu, then run the semantic checks. The returned menu is ready to serve
// a launcher run.
func ParseBytes(data []byte, path string) (*Menu, error) {
	name := path
	if name == "" {
		name = "<stdin>"
	}
	if err := cueutil.CheckFileSize(data, MaxFileSize, name); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	menu, err := cueutil.UnifyAndDecode[Menu](menufileSchema, "#Menu", raw, cueutil.WithFilename(name))
	if err != nil {
		return nil, err
	}
	menu.FilePath = path
	if err := menu.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return menu, nil
}

// Locate returns the menu file to load: the explicit path when given,
// otherwise ./menu.toml, otherwise the menu.toml under the user config
// directory. Explicit paths are returned as-is so a missing file surfaces
// as a read error naming it; discovery candidates must exist.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	candidates := []string{DefaultFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "menuk", DefaultFileName))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: pass a path or create %s", ErrMenuNotFound, DefaultFileName)
}
