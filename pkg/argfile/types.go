// SPDX-License-Identifier: MPL-2.0

package argfile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/types"
)

const (
	// ArityZero declares a slot that takes no tokens (a switch).
	ArityZero ArityName = "zero"
	// ArityExactlyOne declares a slot that requires one token.
	ArityExactlyOne ArityName = "exactly-one"
	// ArityZeroOrOne declares a slot that takes at most one token.
	ArityZeroOrOne ArityName = "zero-or-one"
	// ArityZeroOrMore declares a slot that takes any number of tokens.
	ArityZeroOrMore ArityName = "zero-or-more"
	// ArityOneOrMore declares a slot that requires at least one token.
	ArityOneOrMore ArityName = "one-or-more"
)

// Scalar value types. Prefix with "[]" for lists.
const (
	TypeString   ValueType = "string"
	TypeInt      ValueType = "int"
	TypeFloat    ValueType = "float"
	TypeBool     ValueType = "bool"
	TypeDuration ValueType = "duration"
	TypePath     ValueType = "path"

	listPrefix = "[]"
)

var (
	// ErrInvalidArityName is the sentinel error wrapped by InvalidArityNameError.
	ErrInvalidArityName = errors.New("invalid arity name")
	// ErrInvalidValueType is the sentinel error wrapped by InvalidValueTypeError.
	ErrInvalidValueType = errors.New("invalid value type")

	scalarTypes = map[ValueType]reflect.Type{
		TypeString:   reflect.TypeFor[string](),
		TypeInt:      reflect.TypeFor[int](),
		TypeFloat:    reflect.TypeFor[float64](),
		TypeBool:     reflect.TypeFor[bool](),
		TypeDuration: reflect.TypeFor[time.Duration](),
		TypePath:     reflect.TypeFor[types.FilesystemPath](),
	}
)

type (
	// ArityName is the declarative name of an arity contract.
	// The zero value means "choose from the slot's type".
	ArityName string

	// InvalidArityNameError is returned when an ArityName is not recognized.
	InvalidArityNameError struct {
		Value ArityName
	}

	// ValueType names the Go type a slot converts to. Scalars may be prefixed
	// with "[]" for lists. The zero value means "string" (or "[]string" for
	// arities that bind many tokens).
	ValueType string

	// InvalidValueTypeError is returned when a ValueType is not recognized.
	InvalidValueTypeError struct {
		Value ValueType
	}

	// File is a decoded definitions file.
	File struct {
		// Path is where the file was loaded from. Not part of the document.
		Path     string    `json:"-" toml:"-" yaml:"-"`
		Commands []Command `json:"commands" toml:"commands" yaml:"commands"`
	}

	// Command declares one command with its positional slot and options.
	Command struct {
		Name        types.SymbolName      `json:"name" toml:"name" yaml:"name"`
		Description types.DescriptionText `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
		Hidden      bool                  `json:"hidden,omitempty" toml:"hidden,omitempty" yaml:"hidden,omitempty"`
		// Arguments describes the positional tokens. Nil means the command
		// accepts none.
		Arguments *Slot  `json:"arguments,omitempty" toml:"arguments,omitempty" yaml:"arguments,omitempty"`
		Options   []Slot `json:"options,omitempty" toml:"options,omitempty" yaml:"options,omitempty"`
	}

	// Slot declares the contract of a positional argument slot or an option.
	// Short is only meaningful for options.
	Slot struct {
		Name              string                `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
		Short             string                `json:"short,omitempty" toml:"short,omitempty" yaml:"short,omitempty"`
		Description       types.DescriptionText `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
		Hidden            bool                  `json:"hidden,omitempty" toml:"hidden,omitempty" yaml:"hidden,omitempty"`
		Arity             ArityName             `json:"arity,omitempty" toml:"arity,omitempty" yaml:"arity,omitempty"`
		Type              ValueType             `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
		FromAmong         []string              `json:"from_among,omitempty" toml:"from_among,omitempty" yaml:"from_among,omitempty"`
		OnlyFromAmong     bool                  `json:"only_from_among,omitempty" toml:"only_from_among,omitempty" yaml:"only_from_among,omitempty"`
		Suggestions       []string              `json:"suggestions,omitempty" toml:"suggestions,omitempty" yaml:"suggestions,omitempty"`
		Default           []string              `json:"default,omitempty" toml:"default,omitempty" yaml:"default,omitempty"`
		ExistingFilesOnly bool                  `json:"existing_files_only,omitempty" toml:"existing_files_only,omitempty" yaml:"existing_files_only,omitempty"`
		LegalPathsOnly    bool                  `json:"legal_paths_only,omitempty" toml:"legal_paths_only,omitempty" yaml:"legal_paths_only,omitempty"`
		Pattern           RegexPattern          `json:"pattern,omitempty" toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	}
)

// Error implements the error interface for InvalidArityNameError.
func (e *InvalidArityNameError) Error() string {
	return fmt.Sprintf("invalid arity %q (valid: zero, exactly-one, zero-or-one, zero-or-more, one-or-more)", e.Value)
}

// Unwrap returns ErrInvalidArityName for errors.Is() compatibility.
func (e *InvalidArityNameError) Unwrap() error { return ErrInvalidArityName }

// IsValid returns whether the ArityName is one of the defined names,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid; see Slot.EffectiveArity.
func (a ArityName) IsValid() (bool, []error) {
	switch a {
	case ArityZero, ArityExactlyOne, ArityZeroOrOne, ArityZeroOrMore, ArityOneOrMore, "":
		return true, nil
	default:
		return false, []error{&InvalidArityNameError{Value: a}}
	}
}

// Arity returns the conversion arity of the named contract.
func (a ArityName) Arity() argument.Arity {
	switch a {
	case ArityZero:
		return argument.ArityZero
	case ArityZeroOrMore, ArityOneOrMore:
		return argument.ArityMany
	default:
		return argument.ArityOne
	}
}

// Error implements the error interface for InvalidValueTypeError.
func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid type %q (valid: string, int, float, bool, duration, path, optionally prefixed with [])", e.Value)
}

// Unwrap returns ErrInvalidValueType for errors.Is() compatibility.
func (e *InvalidValueTypeError) Unwrap() error { return ErrInvalidValueType }

// IsValid returns whether the ValueType names a known scalar or list type,
// and a list of validation errors if it does not.
// Note: the zero value ("") is valid; see Slot.EffectiveType.
func (t ValueType) IsValid() (bool, []error) {
	if t == "" {
		return true, nil
	}
	if _, ok := scalarTypes[t.Elem()]; !ok {
		return false, []error{&InvalidValueTypeError{Value: t}}
	}
	return true, nil
}

// IsList reports whether the type has the "[]" prefix.
func (t ValueType) IsList() bool {
	return strings.HasPrefix(string(t), listPrefix)
}

// Elem returns the scalar part of the type.
func (t ValueType) Elem() ValueType {
	return ValueType(strings.TrimPrefix(string(t), listPrefix))
}

// ReflectType returns the Go type the value converts to, or nil for an
// unknown type.
func (t ValueType) ReflectType() reflect.Type {
	elem, ok := scalarTypes[t.Elem()]
	if !ok {
		return nil
	}
	if t.IsList() {
		return reflect.SliceOf(elem)
	}
	return elem
}

// EffectiveArity returns the declared arity, or the one implied by the
// slot's type and role: lists take zero or more, switches take zero,
// options require one token and positional scalars take at most one.
func (s *Slot) EffectiveArity(isOption bool) ArityName {
	switch {
	case s.Arity != "":
		return s.Arity
	case s.Type.IsList():
		return ArityZeroOrMore
	case isOption && s.Type == TypeBool:
		return ArityZero
	case isOption:
		return ArityExactlyOne
	default:
		return ArityZeroOrOne
	}
}

// EffectiveType returns the declared type, or string / []string depending
// on the arity. Switches (arity zero) are bool.
func (s *Slot) EffectiveType(isOption bool) ValueType {
	if s.Type != "" {
		return s.Type
	}
	switch s.EffectiveArity(isOption) {
	case ArityZero:
		return TypeBool
	case ArityZeroOrMore, ArityOneOrMore:
		return listPrefix + TypeString
	default:
		return TypeString
	}
}

// Command returns the command named name, or nil.
func (f *File) Command(name string) *Command {
	for i := range f.Commands {
		if string(f.Commands[i].Name) == name {
			return &f.Commands[i]
		}
	}
	return nil
}
