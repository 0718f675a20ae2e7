// SPDX-License-Identifier: MPL-2.0

// Package config handles argbind's user configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/argbind/config.cue on Linux
// (~/Library/Application Support/argbind/config.cue on macOS,
// %APPDATA%\argbind\config.cue on Windows), falling back to ./config.cue and
// finally to built-in defaults. Files are validated against the embedded
// config_schema.cue before they reach Viper, and ARGBIND_* environment
// variables override file values.
package config
