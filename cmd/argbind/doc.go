// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the argbind CLI.
//
// The root command loads user configuration, installs the logger, and
// selects the message catalog. Subcommands load a definitions file, turn it
// into a cobra tree through internal/cobrabind, and bind tokens against it
// (run), check it (validate), or query its suggestion sources (suggest).
package cmd
