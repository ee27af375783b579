// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/menuk/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/menuk/config.toml on macOS, %APPDATA%\menuk\config.toml
// on Windows), then overridden by MENUK_* environment variables. The package provides
// type-safe configuration access for the selector, shell, runtime, and UI settings.
//
// The raw file is validated against a CUE schema (config_schema.cue) before the viper
// merge, so unknown keys and wrong types produce clear, positioned error messages.
package config
