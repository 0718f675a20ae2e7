// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents into Go structs against an embedded
// schema. Both the definitions file loader (pkg/argfile) and the CLI config
// (internal/config) go through it.
//
// Decoding always follows the same order: compile the schema, compile the
// document and unify it with the schema's root definition, then validate and
// decode.
//
//	//go:embed argfile_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[File](schema, data, "#ArgFile",
//	    cueutil.WithFilename("commands.cue"))
//	if err != nil {
//	    return nil, err // *ValidationError with CUE paths
//	}
//	return res.Value, nil
package cueutil
