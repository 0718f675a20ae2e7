// SPDX-License-Identifier: MPL-2.0

// Package typeconv converts command-line tokens into values of a target
// reflect.Type. It is the built-in conversion capability behind
// argument.Builder.ConvertTo: ConvertOne handles a single token, ConvertMany
// handles the whole token list for container targets.
//
// Scalar parsing is delegated to github.com/spf13/cast, so integer tokens
// accept the same base prefixes cast does (0x, 0o, 0b).
package typeconv
