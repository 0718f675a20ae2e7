// SPDX-License-Identifier: MPL-2.0

package argfile

import (
	"errors"
	"fmt"
	"regexp"
)

// MaxRegexPatternLength bounds a slot's validation pattern.
const MaxRegexPatternLength = 1000

// ErrInvalidRegexPattern is the sentinel error wrapped by InvalidRegexPatternError.
var ErrInvalidRegexPattern = errors.New("invalid regex pattern")

// nestedQuantifier matches groups that contain a quantifier and are themselves
// quantified, e.g. (a+)+ or (.*)*.
var nestedQuantifier = regexp.MustCompile(`\([^)]*[+*][^)]*\)[+*?{]`)

type (
	// RegexPattern is a pattern every token bound to a slot must match.
	// The zero value means no pattern.
	RegexPattern string

	// InvalidRegexPatternError is returned when a RegexPattern is rejected.
	InvalidRegexPatternError struct {
		Value  RegexPattern
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidRegexPatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidRegexPattern for errors.Is() compatibility.
func (e *InvalidRegexPatternError) Unwrap() error { return ErrInvalidRegexPattern }

// String returns the pattern text.
func (r RegexPattern) String() string { return string(r) }

// Validate returns nil when the pattern is empty or compiles and is not
// prone to catastrophic backtracking.
func (r RegexPattern) Validate() error {
	_, err := r.Compile()
	return err
}

// Compile validates and compiles the pattern. It returns nil, nil for the
// zero value.
func (r RegexPattern) Compile() (*regexp.Regexp, error) {
	if r == "" {
		return nil, nil
	}
	if len(r) > MaxRegexPatternLength {
		return nil, &InvalidRegexPatternError{Value: r, Reason: fmt.Sprintf("too long (%d chars, max %d)", len(r), MaxRegexPatternLength)}
	}
	if nestedQuantifier.MatchString(string(r)) {
		return nil, &InvalidRegexPatternError{Value: r, Reason: "nested quantifiers can cause excessive backtracking"}
	}
	re, err := regexp.Compile(string(r))
	if err != nil {
		return nil, &InvalidRegexPatternError{Value: r, Reason: err.Error()}
	}
	return re, nil
}
