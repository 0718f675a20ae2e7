// SPDX-License-Identifier: MPL-2.0

package argument_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/invowk/argbind/pkg/argument"
)

func TestArityPolicies(t *testing.T) {
	t.Parallel()

	const (
		missing   = "Required argument missing for command: 'copy'."
		expectsTw = "Command 'copy' expects a single argument but 2 were provided."
		expectsTh = "Command 'copy' expects a single argument but 3 were provided."
	)

	tests := []struct {
		name   string
		seal   func(*argument.Builder) *argument.Definition
		tokens []string
		want   []string
	}{
		{"exactly one with none", (*argument.Builder).ExactlyOne, nil, []string{missing}},
		{"exactly one with one", (*argument.Builder).ExactlyOne, []string{"a"}, nil},
		{"exactly one with two", (*argument.Builder).ExactlyOne, []string{"a", "b"}, []string{expectsTw}},
		{"exactly one with three", (*argument.Builder).ExactlyOne, []string{"a", "b", "c"}, []string{expectsTh}},
		{"zero or one with none", (*argument.Builder).ZeroOrOne, nil, nil},
		{"zero or one with one", (*argument.Builder).ZeroOrOne, []string{"a"}, nil},
		{"zero or one with two", (*argument.Builder).ZeroOrOne, []string{"a", "b"}, []string{expectsTw}},
		{"zero or more with none", (*argument.Builder).ZeroOrMore, nil, nil},
		{"zero or more with three", (*argument.Builder).ZeroOrMore, []string{"a", "b", "c"}, nil},
		{"one or more with none", (*argument.Builder).OneOrMore, nil, []string{missing}},
		{"one or more with one", (*argument.Builder).OneOrMore, []string{"a"}, nil},
		{"one or more with three", (*argument.Builder).OneOrMore, []string{"a", "b", "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := tt.seal(argument.NewBuilder())
			got := def.Validate(argument.NewCommandSymbol("copy", def, tt.tokens...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArityPolicies_OptionMessages(t *testing.T) {
	t.Parallel()

	def := argument.NewBuilder().ExactlyOne()

	got := def.Validate(argument.NewOptionSymbol("output", def))
	want := []string{"Required argument missing for option: 'output'."}
	if !slices.Equal(got, want) {
		t.Errorf("Validate(no tokens) = %q, want %q", got, want)
	}

	got = def.Validate(argument.NewOptionSymbol("output", def, "a", "b"))
	want = []string{"Option 'output' expects a single argument but 2 were provided."}
	if !slices.Equal(got, want) {
		t.Errorf("Validate(two tokens) = %q, want %q", got, want)
	}
}

func TestArityPolicies_ArityAndRawConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		seal      func(*argument.Builder) *argument.Definition
		wantArity argument.Arity
		tokens    []string
		wantValue any
	}{
		{"none", (*argument.Builder).None, argument.ArityZero, nil, true},
		{"exactly one", (*argument.Builder).ExactlyOne, argument.ArityOne, []string{"x"}, "x"},
		{"zero or one", (*argument.Builder).ZeroOrOne, argument.ArityOne, []string{"x"}, "x"},
		{"zero or more", (*argument.Builder).ZeroOrMore, argument.ArityMany, []string{"x", "y"}, []string{"x", "y"}},
		{"zero or more empty", (*argument.Builder).ZeroOrMore, argument.ArityMany, nil, []string{}},
		{"one or more", (*argument.Builder).OneOrMore, argument.ArityMany, []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := tt.seal(argument.NewBuilder())
			if def.Arity() != tt.wantArity {
				t.Errorf("Arity() = %v, want %v", def.Arity(), tt.wantArity)
			}
			res := def.Convert(argument.NewCommandSymbol("cmd", def, tt.tokens...))
			if !res.Succeeded() {
				t.Fatalf("Convert() failed: %s", res.Message())
			}
			if !reflect.DeepEqual(res.Value(), tt.wantValue) {
				t.Errorf("Convert() = %#v, want %#v", res.Value(), tt.wantValue)
			}
		})
	}
}

func TestZeroOrOne_ValidatesButDoesNotConvertEmpty(t *testing.T) {
	t.Parallel()

	def := argument.NewBuilder().ZeroOrOne()
	sym := argument.NewCommandSymbol("cmd", def)
	if msgs := def.Validate(sym); len(msgs) != 0 {
		t.Errorf("Validate() with no tokens = %q, want none", msgs)
	}
	res := def.Convert(sym)
	if res.Succeeded() {
		t.Fatalf("Convert() with no tokens succeeded with %v", res.Value())
	}
	want := "Command 'cmd' expects a single argument but 0 were provided."
	if res.Message() != want {
		t.Errorf("Message() = %q, want %q", res.Message(), want)
	}
}

func TestRawManyConversion_CopiesTokens(t *testing.T) {
	t.Parallel()

	def := argument.NewBuilder().ZeroOrMore()
	tokens := []string{"a", "b"}
	res := def.Convert(argument.NewCommandSymbol("cmd", def, tokens...))
	got, ok := argument.ResultValue[[]string](res)
	if !ok {
		t.Fatalf("ResultValue[[]string] failed for %#v", res.Value())
	}
	got[0] = "changed"
	if tokens[0] != "a" {
		t.Error("converted slice aliases the bound tokens")
	}
}

func TestNone(t *testing.T) {
	t.Parallel()

	custom := func(sym *argument.Symbol) string {
		if sym.Name == "forbidden" {
			return "custom"
		}
		return ""
	}
	def := argument.NewBuilder().AddValidator(custom).None()

	if n := len(def.Validators()); n != 2 {
		t.Fatalf("len(Validators()) = %d, want 2", n)
	}

	got := def.Validate(argument.NewOptionSymbol("forbidden", def, "x"))
	want := []string{"custom", "Option 'forbidden' does not accept arguments but 1 was provided."}
	if !slices.Equal(got, want) {
		t.Errorf("Validate() = %q, want %q", got, want)
	}

	if msgs := def.Validate(argument.NewOptionSymbol("verbose", def)); msgs != nil {
		t.Errorf("Validate(no tokens) = %q, want nil", msgs)
	}
}

func TestNoArgument(t *testing.T) {
	t.Parallel()

	base := argument.NoArgument()
	if base != argument.NoArgument() {
		t.Error("NoArgument() returned different definitions")
	}
	if base.Arity() != argument.ArityZero {
		t.Errorf("Arity() = %v, want zero", base.Arity())
	}
	res := base.Convert(argument.NewOptionSymbol("verbose", base))
	if v, ok := argument.ResultValue[bool](res); !ok || !v {
		t.Errorf("Convert() = %#v, want true", res.Value())
	}
	msgs := base.Validate(argument.NewCommandSymbol("status", base, "a", "b"))
	want := []string{"Command 'status' does not accept arguments but 2 were provided."}
	if !slices.Equal(msgs, want) {
		t.Errorf("Validate() = %q, want %q", msgs, want)
	}
}

func TestBuilder_ResealPanics(t *testing.T) {
	t.Parallel()

	seals := map[string]func(*argument.Builder){
		"None":        func(b *argument.Builder) { b.None() },
		"ExactlyOne":  func(b *argument.Builder) { b.ExactlyOne() },
		"ZeroOrOne":   func(b *argument.Builder) { b.ZeroOrOne() },
		"ZeroOrMore":  func(b *argument.Builder) { b.ZeroOrMore() },
		"OneOrMore":   func(b *argument.Builder) { b.OneOrMore() },
		"ConvertTo":   func(b *argument.Builder) { b.ConvertTo(reflect.TypeFor[int]()) },
		"ConvertWith": func(b *argument.Builder) { b.ConvertWith(nil, func(*argument.Symbol) argument.Result { return argument.Success(1) }) },
	}

	for name, seal := range seals {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := argument.NewBuilder()
			b.ExactlyOne()

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, argument.ErrBuilderSealed) {
					t.Errorf("recover() = %v, want ErrBuilderSealed", r)
				}
			}()
			seal(b)
		})
	}
}
