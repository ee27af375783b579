// SPDX-License-Identifier: MPL-2.0

// Package menufile defines the menu definition file format and its parser.
//
// A menu file is TOML. It lists the selectable entries in display order and
// an optional config table with per-menu settings:
//
//	[config]
//	numbered = true
//	separator = ": "
//
//	[[entries]]
//	name = "edit notes"
//	run = "foot -e vi ~/notes.md"
//
//	[[entries]]
//	name = "lock screen"
//	run = "loginctl lock-session"
//
// Files are validated twice: structurally against an embedded CUE schema
// (types, enum values, unknown keys), then semantically by Validate (empty
// names, blank commands). Both run before any selector is spawned.
package menufile
