// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"reflect"

	"github.com/invowk/argbind/pkg/typeconv"
)

const (
	// ArityZero means the symbol accepts no tokens.
	ArityZero Arity = iota
	// ArityOne means the symbol binds a single token.
	ArityOne
	// ArityMany means the symbol binds every token.
	ArityMany
)

// Arity is the cardinality class a sealed definition converts under.
type Arity int

// String returns the lower-case name of the arity.
func (a Arity) String() string {
	switch a {
	case ArityZero:
		return "zero"
	case ArityOne:
		return "one"
	case ArityMany:
		return "many"
	default:
		return "unknown"
	}
}

// IsValid returns whether the Arity is one of the defined values,
// and a list of validation errors if it is not.
func (a Arity) IsValid() (bool, []error) {
	switch a {
	case ArityZero, ArityOne, ArityMany:
		return true, nil
	default:
		return false, []error{&InvalidArityError{Value: a}}
	}
}

// InferArity returns ArityMany for container types and ArityOne otherwise.
// A nil type infers ArityOne.
func InferArity(t reflect.Type) Arity {
	if typeconv.IsMultiValue(t) {
		return ArityMany
	}
	return ArityOne
}

func resolveArity(t reflect.Type, arity []Arity) Arity {
	if len(arity) > 0 {
		return arity[0]
	}
	return InferArity(t)
}
