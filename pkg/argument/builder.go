// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"log/slog"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builder accumulates an argument contract. It is owned by a single
// goroutine. Exactly one sealing call (an arity or conversion operation)
// turns it into a *Definition; changes made after that are ignored.
// The zero value is ready to use.
type Builder struct {
	validators   []Validator
	validTokens  map[string]struct{}
	suggestions  SuggestionSource
	defaultValue func() any
	help         HelpDetail
	sealed       bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddValidator appends v to the validator list. A nil validator is ignored.
func (b *Builder) AddValidator(v Validator) *Builder {
	if v == nil || !b.mutable("AddValidator") {
		return b
	}
	b.validators = append(b.validators, v)
	return b
}

// FromAmong adds values to the valid-token set and to the static
// suggestions. It does not reject other tokens; see OnlyValidTokens.
func (b *Builder) FromAmong(values ...string) *Builder {
	if !b.mutable("FromAmong") {
		return b
	}
	if b.validTokens == nil {
		b.validTokens = make(map[string]struct{}, len(values))
	}
	for _, v := range values {
		b.validTokens[v] = struct{}{}
	}
	b.suggestions.static = append(b.suggestions.static, values...)
	return b
}

// OnlyValidTokens installs RequireValidTokens, rejecting tokens outside the
// set built by FromAmong.
func (b *Builder) OnlyValidTokens() *Builder {
	return b.AddValidator(RequireValidTokens)
}

// WithHelp sets the help metadata.
func (b *Builder) WithHelp(help HelpDetail) *Builder {
	if !b.mutable("WithHelp") {
		return b
	}
	b.help = help
	return b
}

// WithDefaultValue sets the factory invoked when no tokens are bound.
// A nil factory clears any previous one.
func (b *Builder) WithDefaultValue(factory func() any) *Builder {
	if !b.mutable("WithDefaultValue") {
		return b
	}
	b.defaultValue = factory
	return b
}

// AddSuggestions appends static completion candidates.
func (b *Builder) AddSuggestions(values ...string) *Builder {
	if !b.mutable("AddSuggestions") {
		return b
	}
	b.suggestions.static = append(b.suggestions.static, values...)
	return b
}

// AddSuggestionSource appends a dynamic completion producer.
// It panics with ErrNilSuggestionSource when fn is nil.
func (b *Builder) AddSuggestionSource(fn SuggestionFunc) *Builder {
	if fn == nil {
		panic(ErrNilSuggestionSource)
	}
	if !b.mutable("AddSuggestionSource") {
		return b
	}
	b.suggestions.dynamic = append(b.suggestions.dynamic, fn)
	return b
}

// Sealed reports whether a sealing call has been made.
func (b *Builder) Sealed() bool { return b.sealed }

func (b *Builder) mutable(op string) bool {
	if b.sealed {
		slog.Debug("ignoring change to sealed argument builder", "operation", op)
		return false
	}
	return true
}

func (b *Builder) checkUnsealed() {
	if b.sealed {
		panic(ErrBuilderSealed)
	}
}

// seal copies the accumulated state into a new Definition. Callers must
// call checkUnsealed before touching builder state.
func (b *Builder) seal(arity Arity, convert Converter, valueType reflect.Type) *Definition {
	b.sealed = true
	return &Definition{
		arity:        arity,
		validators:   slices.Clone(b.validators),
		convert:      convert,
		validTokens:  maps.Clone(b.validTokens),
		suggestions:  b.suggestions.clone(),
		defaultValue: b.defaultValue,
		help:         b.help,
		valueType:    valueType,
	}
}
