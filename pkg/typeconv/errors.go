// SPDX-License-Identifier: MPL-2.0

package typeconv

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrConversion is the sentinel error wrapped by ConversionError.
	ErrConversion = errors.New("conversion failed")
	// ErrUnsupportedType is returned when no conversion exists for a target type.
	ErrUnsupportedType = errors.New("unsupported conversion target type")
)

// ConversionError describes a token that could not be converted to Type.
type ConversionError struct {
	Token string
	Type  reflect.Type
	Cause error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Token, TypeName(e.Type), e.Cause)
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Token, TypeName(e.Type))
}

// Unwrap returns the sentinel and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Cause}
}

// TypeName returns a short display name for t ("int", "[]string", "Duration").
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
