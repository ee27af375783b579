// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates already-decoded configuration data against an
// embedded CUE schema.
//
// menuk configuration is written in TOML. Files are first unmarshalled into
// plain Go maps, then unified with the schema definition and decoded into
// their typed struct:
//
//	//go:embed menufile_schema.cue
//	var schema []byte
//
//	var raw map[string]any
//	_ = toml.Unmarshal(data, &raw)
//	menu, err := cueutil.UnifyAndDecode[Menu](schema, "#Menu", raw,
//	    cueutil.WithFilename("menu.toml"))
//
// Schema violations are reported with their JSON path (for example
// "entries[2].run: conflicting values ..."), which keeps TOML typos easy to
// locate.
package cueutil
