// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/invowk/argbind/pkg/types"
)

type (
	// HelpDetail is the metadata help renderers show for a symbol.
	HelpDetail struct {
		// Name is the placeholder shown for the value (e.g. "FILE").
		Name        string
		Description types.DescriptionText
		Hidden      bool
	}

	// Definition is a sealed argument contract. It is immutable and safe for
	// concurrent use.
	Definition struct {
		arity        Arity
		validators   []Validator
		convert      Converter
		validTokens  map[string]struct{}
		suggestions  SuggestionSource
		defaultValue func() any
		help         HelpDetail
		valueType    reflect.Type
	}
)

// Arity returns the arity the definition converts under.
func (d *Definition) Arity() Arity { return d.arity }

// Validators returns a copy of the validators in registration order.
func (d *Definition) Validators() []Validator {
	return slices.Clone(d.validators)
}

// Validate runs every validator in order against sym and returns the
// failure messages. A nil result means every validator passed.
func (d *Definition) Validate(sym *Symbol) []string {
	var msgs []string
	for _, v := range d.validators {
		if msg := v(sym); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Convert runs the definition's converter against sym.
func (d *Definition) Convert(sym *Symbol) Result {
	return d.convert(sym)
}

// ValidTokens returns the sorted valid-token set.
func (d *Definition) ValidTokens() []string {
	tokens := maps.Keys(d.validTokens)
	slices.Sort(tokens)
	return tokens
}

// Suggestions returns the definition's suggestion source.
func (d *Definition) Suggestions() SuggestionSource { return d.suggestions }

// HasDefaultValue reports whether a default-value factory was configured.
func (d *Definition) HasDefaultValue() bool { return d.defaultValue != nil }

// DefaultValue invokes the default-value factory. It returns nil when no
// factory was configured.
func (d *Definition) DefaultValue() any {
	if d.defaultValue == nil {
		return nil
	}
	return d.defaultValue()
}

// Help returns the help metadata.
func (d *Definition) Help() HelpDetail { return d.help }

// ValueType returns the type the converter produces, or nil when unknown.
func (d *Definition) ValueType() reflect.Type { return d.valueType }
