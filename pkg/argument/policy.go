// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"reflect"
	"sync"
)

var (
	stringType      = reflect.TypeFor[string]()
	stringSliceType = reflect.TypeFor[[]string]()
	boolType        = reflect.TypeFor[bool]()

	noArgument = sync.OnceValue(func() *Definition {
		return &Definition{
			arity:      ArityZero,
			validators: []Validator{RejectAllTokens},
			convert:    func(*Symbol) Result { return Success(true) },
			valueType:  boolType,
		}
	})
)

// NoArgument returns the shared definition for symbols that take no tokens.
// It rejects any bound token and converts to true, marking presence.
func NoArgument() *Definition {
	return noArgument()
}

// None seals the builder with arity zero. The validators and converter of
// NoArgument are appended after any validators already configured.
func (b *Builder) None() *Definition {
	b.checkUnsealed()
	base := NoArgument()
	b.validators = append(b.validators, base.validators...)
	return b.seal(ArityZero, base.convert, base.valueType)
}

// ExactlyOne seals the builder with arity one, requiring exactly one token.
func (b *Builder) ExactlyOne() *Definition {
	b.checkUnsealed()
	b.validators = append(b.validators, RequireExactlyOne)
	return b.seal(ArityOne, guardSingle(convertRawOne), stringType)
}

// ZeroOrOne seals the builder with arity one, allowing at most one token.
// Conversion is dispatched on arity alone, so Convert with zero tokens fails
// with the expects-one message like ExactlyOne does. Engines check
// HasDefaultValue or the token count before converting an empty slot.
func (b *Builder) ZeroOrOne() *Definition {
	b.checkUnsealed()
	b.validators = append(b.validators, RequireAtMostOne)
	return b.seal(ArityOne, guardSingle(convertRawOne), stringType)
}

// ZeroOrMore seals the builder with arity many and no count check.
func (b *Builder) ZeroOrMore() *Definition {
	b.checkUnsealed()
	return b.seal(ArityMany, convertRawMany, stringSliceType)
}

// OneOrMore seals the builder with arity many, requiring at least one token.
func (b *Builder) OneOrMore() *Definition {
	b.checkUnsealed()
	b.validators = append(b.validators, RequireAtLeastOne)
	return b.seal(ArityMany, convertRawMany, stringSliceType)
}

func convertRawOne(sym *Symbol) Result {
	return Success(sym.Tokens[0])
}

func convertRawMany(sym *Symbol) Result {
	out := make([]string, len(sym.Tokens))
	copy(out, sym.Tokens)
	return Success(out)
}
