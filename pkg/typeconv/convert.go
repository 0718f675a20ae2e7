// SPDX-License-Identifier: MPL-2.0

package typeconv

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	durationType        = reflect.TypeFor[time.Duration]()
	byteSliceType       = reflect.TypeFor[[]byte]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

	// integerPattern accepts an optional sign followed by decimal digits or a
	// 0x/0o/0b prefixed literal. Fractions and exponents are rejected.
	integerPattern = regexp.MustCompile(`^([+-]?)(?:(0[xXoObB][0-9a-fA-F_]+)|([0-9]+))$`)
)

// IsMultiValue reports whether t is a container that binds every token
// (slice, array or map). []byte is treated as text, not as a container.
func IsMultiValue(t reflect.Type) bool {
	if t == nil || t == byteSliceType {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// ConvertOne converts a single token to a value of type t.
func ConvertOne(t reflect.Type, token string) (any, error) {
	v, err := convertValue(t, token)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// ConvertMany converts every token into a container of type t. Slices
// receive one element per token (zero tokens yield an empty, non-nil slice),
// arrays require exactly t.Len() tokens, and maps with string keys read
// "key=value" tokens.
func ConvertMany(t reflect.Type, tokens []string) (any, error) {
	if t == nil {
		return nil, ErrUnsupportedType
	}
	switch t.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(t, len(tokens), len(tokens))
		for i, token := range tokens {
			ev, err := convertValue(t.Elem(), token)
			if err != nil {
				return nil, err
			}
			out.Index(i).Set(ev)
		}
		return out.Interface(), nil
	case reflect.Array:
		if len(tokens) != t.Len() {
			return nil, &ConversionError{
				Token: strings.Join(tokens, " "),
				Type:  t,
				Cause: fmt.Errorf("expected %d values, got %d", t.Len(), len(tokens)),
			}
		}
		out := reflect.New(t).Elem()
		for i, token := range tokens {
			ev, err := convertValue(t.Elem(), token)
			if err != nil {
				return nil, err
			}
			out.Index(i).Set(ev)
		}
		return out.Interface(), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key %s", ErrUnsupportedType, TypeName(t.Key()))
		}
		out := reflect.MakeMapWithSize(t, len(tokens))
		for _, token := range tokens {
			key, raw, found := strings.Cut(token, "=")
			if !found {
				return nil, &ConversionError{Token: token, Type: t, Cause: fmt.Errorf("expected key=value")}
			}
			ev, err := convertValue(t.Elem(), raw)
			if err != nil {
				return nil, err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), ev)
		}
		return out.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a container", ErrUnsupportedType, TypeName(t))
	}
}

func convertValue(t reflect.Type, token string) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrUnsupportedType
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		return ptr.Elem(), nil
	}

	if t == durationType {
		d, err := cast.ToDurationE(token)
		if err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		return reflect.ValueOf(d), nil
	}

	if t == byteSliceType {
		return reflect.ValueOf([]byte(token)), nil
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(token)
	case reflect.Bool:
		b, err := cast.ToBoolE(token)
		if err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := parseInteger(token, cast.ToInt64E)
		if err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: fmt.Errorf("value out of range")}
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := parseInteger(token, cast.ToUint64E)
		if err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		if out.OverflowUint(n) {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: fmt.Errorf("value out of range")}
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(token)
		if err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: err}
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, &ConversionError{Token: token, Type: t, Cause: fmt.Errorf("value out of range")}
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, TypeName(t))
	}
	return out, nil
}

// parseInteger rejects tokens that are not integer literals, then hands a
// normalized form to parse. A plus sign and the leading zeros of decimal
// literals are dropped, so "010" reads as ten rather than as an octal literal.
func parseInteger[T int64 | uint64](token string, parse func(any) (T, error)) (T, error) {
	m := integerPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%q is not an integer", token)
	}
	sign, literal := m[1], m[2]
	if sign == "+" {
		sign = ""
	}
	if literal == "" {
		literal = strings.TrimLeft(m[3], "0")
		if literal == "" {
			literal = "0"
		}
	}
	return parse(sign + literal)
}
