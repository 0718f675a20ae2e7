// SPDX-License-Identifier: MPL-2.0

package binding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/argbind/pkg/argument"
)

var (
	// ErrValidationFailed is the sentinel error wrapped by ValidationError.
	ErrValidationFailed = errors.New("validation failed")
	// ErrUnknownOption is returned when tokens are supplied for an option the
	// command does not declare.
	ErrUnknownOption = errors.New("unknown option")
)

type (
	// ValidationError carries every validator message produced for a symbol.
	ValidationError struct {
		Kind     argument.SymbolKind
		Name     string
		Messages []string
	}

	// ConversionError carries the converter's failure message for a symbol.
	ConversionError struct {
		Kind    argument.SymbolKind
		Name    string
		Message string
	}

	// UnknownOptionError names an option that is not declared.
	UnknownOptionError struct {
		Command string
		Option  string
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return fmt.Sprintf("%s '%s': %s", e.Kind, e.Name, strings.Join(e.Messages, " "))
}

// Unwrap returns ErrValidationFailed for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// Error implements the error interface.
func (e *ConversionError) Error() string { return e.Message }

// Unwrap returns argument.ErrConversionFailed for errors.Is() compatibility.
func (e *ConversionError) Unwrap() error { return argument.ErrConversionFailed }

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("command '%s' has no option '%s'", e.Command, e.Option)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Messages flattens err into the user-facing messages it carries, in order.
// Wrapping layers are peeled until a joined error, a *ValidationError or a
// *ConversionError is found; anything else contributes its Error() text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch t := e.(type) {
		case interface{ Unwrap() []error }:
			var out []string
			for _, inner := range t.Unwrap() {
				out = append(out, Messages(inner)...)
			}
			return out
		case *ValidationError:
			return t.Messages
		case *ConversionError:
			return []string{t.Message}
		}
	}
	return []string{err.Error()}
}
