// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"errors"
	"reflect"
	"strings"

	"github.com/invowk/argbind/pkg/typeconv"
)

// ErrNilConverter is the panic value when ConvertWith receives a nil converter.
var ErrNilConverter = errors.New("converter must not be nil")

// ConvertTo seals the builder with the built-in converter for target.
// Without an explicit arity, container types (except []byte) convert under
// ArityMany and everything else under ArityOne. Any other arity seals a
// converter that always fails with an unsupported-arity message.
func (b *Builder) ConvertTo(target reflect.Type, arity ...Arity) *Definition {
	a := resolveArity(target, arity)
	return b.ConvertWith(target, typeConverter(target, a), a)
}

// ConvertWith seals the builder with a caller-supplied converter. target
// documents the produced type and may be nil. Under ArityOne the converter
// only runs when exactly one token is bound.
func (b *Builder) ConvertWith(target reflect.Type, convert Converter, arity ...Arity) *Definition {
	if convert == nil {
		panic(ErrNilConverter)
	}
	b.checkUnsealed()
	a := resolveArity(target, arity)
	if a == ArityOne {
		convert = guardSingle(convert)
	}
	return b.seal(a, convert, target)
}

// ParseAs seals b with the built-in converter for T.
func ParseAs[T any](b *Builder, arity ...Arity) *Definition {
	return b.ConvertTo(reflect.TypeFor[T](), arity...)
}

// ParseWith seals b with parse as the converter. A parse error becomes a
// failed Result carrying the error text.
func ParseWith[T any](b *Builder, parse func(sym *Symbol) (T, error), arity ...Arity) *Definition {
	return b.ConvertWith(reflect.TypeFor[T](), func(sym *Symbol) Result {
		v, err := parse(sym)
		if err != nil {
			return Failure(err.Error())
		}
		return Success(v)
	}, arity...)
}

// guardSingle runs convert only when exactly one token is bound.
func guardSingle(convert Converter) Converter {
	return func(sym *Symbol) Result {
		if len(sym.Tokens) != 1 {
			return Failure(sym.expectsOneArgument())
		}
		return convert(sym)
	}
}

func typeConverter(target reflect.Type, arity Arity) Converter {
	typeName := typeconv.TypeName(target)
	switch arity {
	case ArityOne:
		return func(sym *Symbol) Result {
			v, err := typeconv.ConvertOne(target, sym.Tokens[0])
			if err != nil {
				return Failure(sym.Catalog().CannotParseArgument(sym.Tokens[0], typeName))
			}
			return Success(v)
		}
	case ArityMany:
		return func(sym *Symbol) Result {
			v, err := typeconv.ConvertMany(target, sym.Tokens)
			if err != nil {
				token := strings.Join(sym.Tokens, " ")
				var convErr *typeconv.ConversionError
				if errors.As(err, &convErr) {
					token = convErr.Token
				}
				return Failure(sym.Catalog().CannotParseArgument(token, typeName))
			}
			return Success(v)
		}
	default:
		return func(sym *Symbol) Result {
			return Failure(sym.Catalog().UnsupportedArity(arity))
		}
	}
}
