// SPDX-License-Identifier: MPL-2.0

// Package binding evaluates sealed argument definitions against the tokens a
// parser bound to them. It is the engine behind both the cobra adapter and
// the argbind CLI: validators run first (every message is collected), then
// defaults apply to unbound symbols, then the converter produces the value.
package binding
