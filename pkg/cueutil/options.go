// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the maximum configuration file size menuk accepts
// (1MB). The limit keeps a corrupt or hostile file from exhausting memory
// before validation even starts.
const DefaultMaxFileSize int64 = 1 * 1024 * 1024

type (
	// parseOptions holds configuration for schema validation.
	parseOptions struct {
		filename string
	}

	// Option configures schema validation behavior.
	Option func(*parseOptions)
)

// defaultOptions returns the default validation options.
func defaultOptions() parseOptions {
	return parseOptions{filename: ""}
}

// WithFilename sets the filename used in error messages so users can
// locate the offending file.
func WithFilename(name string) Option {
	return func(o *parseOptions) {
		o.filename = name
	}
}
