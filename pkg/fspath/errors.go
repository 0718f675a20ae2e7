// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPath is the sentinel error wrapped by MalformedPathError.
	ErrMalformedPath = errors.New("malformed path")
	// ErrUnsupportedPathForm is the sentinel error wrapped by UnsupportedPathFormError.
	ErrUnsupportedPathForm = errors.New("unsupported path form")
)

type (
	// MalformedPathError is returned when a token contains characters that can
	// never appear in a path, or is empty or too long.
	MalformedPathError struct {
		Value  string
		Reason string
	}

	// UnsupportedPathFormError is returned when a token is well-formed text but
	// uses a path form the target platform does not support.
	UnsupportedPathFormError struct {
		Value  string
		OS     string
		Reason string
	}
)

// Error implements the error interface.
func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("illegal characters in path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrMalformedPath for errors.Is() compatibility.
func (e *MalformedPathError) Unwrap() error { return ErrMalformedPath }

// Error implements the error interface.
func (e *UnsupportedPathFormError) Error() string {
	return fmt.Sprintf("the format of path %q is not supported on %s: %s", e.Value, e.OS, e.Reason)
}

// Unwrap returns ErrUnsupportedPathForm for errors.Is() compatibility.
func (e *UnsupportedPathFormError) Unwrap() error { return ErrUnsupportedPathForm }
