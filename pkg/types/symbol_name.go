// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"regexp"
)

// MaxSymbolNameLength bounds command and option names.
const MaxSymbolNameLength = 256

// ErrInvalidSymbolName is the sentinel error wrapped by InvalidSymbolNameError.
var ErrInvalidSymbolName = errors.New("invalid symbol name")

// symbolNameRegex is POSIX-flavoured: starts with a letter, then letters,
// digits, hyphens or underscores.
var symbolNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

type (
	// SymbolName is the name of a command or option as typed on the command
	// line, without leading dashes.
	SymbolName string

	// InvalidSymbolNameError is returned when a SymbolName does not match the
	// allowed format.
	InvalidSymbolNameError struct {
		Value  SymbolName
		Reason string
	}
)

// String returns the string representation of the SymbolName.
func (n SymbolName) String() string { return string(n) }

// Validate returns an error if the name is empty, too long, or malformed.
func (n SymbolName) Validate() error {
	switch {
	case n == "":
		return &InvalidSymbolNameError{Value: n, Reason: "must not be empty"}
	case len(n) > MaxSymbolNameLength:
		return &InvalidSymbolNameError{Value: n, Reason: fmt.Sprintf("too long (%d chars, max %d)", len(n), MaxSymbolNameLength)}
	case !symbolNameRegex.MatchString(string(n)):
		return &InvalidSymbolNameError{Value: n, Reason: "must start with a letter and contain only letters, digits, hyphens and underscores"}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidSymbolNameError) Error() string {
	return fmt.Sprintf("invalid symbol name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidSymbolName for errors.Is() compatibility.
func (e *InvalidSymbolNameError) Unwrap() error { return ErrInvalidSymbolName }
