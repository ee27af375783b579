// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// UnifyAndDecode checks data against the named schema definition and
// decodes the unified value into T:
//
//  1. Compile the embedded schema and look up schemaPath (e.g. "#Menu").
//  2. Encode the Go value and unify it with the definition.
//  3. Validate the unified value and decode it into a T.
//
// data is a plain Go value, typically the map a TOML file was unmarshalled
// into. Schema violations come back with their JSON path prefixed.
func UnifyAndDecode[T any](schema []byte, schemaPath string, data any, opts ...Option) (*T, error) {
	unified, filename, err := unify(schema, schemaPath, data, opts)
	if err != nil {
		return nil, err
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &result, nil
}

// Validate checks data against the named schema definition without
// decoding it. Callers that unmarshal through another layer (viper) use
// this to reject malformed files before the merge.
func Validate(schema []byte, schemaPath string, data any, opts ...Option) error {
	_, _, err := unify(schema, schemaPath, data, opts)
	return err
}

func unify(schema []byte, schemaPath string, data any, opts []Option) (cue.Value, string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	dataValue := ctx.Encode(data)
	if dataValue.Err() != nil {
		return cue.Value{}, filename, FormatError(dataValue.Err(), filename)
	}

	unified := schemaRoot.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cue.Value{}, filename, FormatError(err, filename)
	}
	return unified, filename, nil
}
