// SPDX-License-Identifier: MPL-2.0

// Package argfile loads declarative command definitions and turns them into
// sealed argument definitions.
//
// A definitions file lists commands, each with an optional positional
// argument slot and a list of options. The same structure can be written in
// CUE (.cue), TOML (.toml) or YAML (.yaml, .yml). CUE documents are checked
// against the embedded schema in argfile_schema.cue; every format then goes
// through File.Validate before Build seals the definitions.
package argfile
