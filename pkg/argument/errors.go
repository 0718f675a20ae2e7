// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArity is the sentinel error wrapped by InvalidArityError.
	ErrInvalidArity = errors.New("invalid arity")
	// ErrBuilderSealed is the panic value when a sealed builder is sealed again.
	ErrBuilderSealed = errors.New("argument builder already sealed")
	// ErrNilSuggestionSource is the panic value when a nil suggestion source is registered.
	ErrNilSuggestionSource = errors.New("suggestion source must not be nil")
	// ErrConversionFailed is the sentinel error wrapped by ConversionError.
	ErrConversionFailed = errors.New("argument conversion failed")
)

type (
	// InvalidArityError is returned when an Arity value is not recognized.
	// It wraps ErrInvalidArity for errors.Is() compatibility.
	InvalidArityError struct {
		Value Arity
	}

	// ConversionError carries the message of a failed Result.
	ConversionError struct {
		Message string
	}
)

// Error implements the error interface for InvalidArityError.
func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("invalid arity %d (valid: zero, one, many)", int(e.Value))
}

// Unwrap returns ErrInvalidArity for errors.Is() compatibility.
func (e *InvalidArityError) Unwrap() error { return ErrInvalidArity }

// Error implements the error interface for ConversionError.
func (e *ConversionError) Error() string { return e.Message }

// Unwrap returns ErrConversionFailed for errors.Is() compatibility.
func (e *ConversionError) Unwrap() error { return ErrConversionFailed }
