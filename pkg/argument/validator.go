// SPDX-License-Identifier: MPL-2.0

package argument

type (
	// Validator checks the tokens bound to a symbol. It returns "" when the
	// tokens pass and a user-facing message when they do not.
	Validator func(sym *Symbol) string

	// Converter turns the tokens bound to a symbol into a value.
	Converter func(sym *Symbol) Result
)

// RequireExactlyOne fails when zero or more than one token is bound.
func RequireExactlyOne(sym *Symbol) string {
	switch n := len(sym.Tokens); {
	case n == 0:
		return sym.requiredArgumentMissing()
	case n > 1:
		return sym.expectsOneArgument()
	}
	return ""
}

// RequireAtMostOne fails when more than one token is bound.
func RequireAtMostOne(sym *Symbol) string {
	if len(sym.Tokens) > 1 {
		return sym.expectsOneArgument()
	}
	return ""
}

// RequireAtLeastOne fails when no token is bound.
func RequireAtLeastOne(sym *Symbol) string {
	if len(sym.Tokens) == 0 {
		return sym.requiredArgumentMissing()
	}
	return ""
}

// RejectAllTokens fails when any token is bound.
func RejectAllTokens(sym *Symbol) string {
	if n := len(sym.Tokens); n > 0 {
		return sym.Catalog().NoArgumentsAllowed(sym.Kind, sym.Name, n)
	}
	return ""
}

// RequireValidTokens fails on the first token outside the valid-token set of
// the symbol's definition. A definition without a valid-token set accepts
// every token.
func RequireValidTokens(sym *Symbol) string {
	def := sym.Definition
	if def == nil || len(def.validTokens) == 0 {
		return ""
	}
	for _, tok := range sym.Tokens {
		if _, ok := def.validTokens[tok]; !ok {
			return sym.Catalog().UnrecognizedToken(tok, def.ValidTokens())
		}
	}
	return ""
}
