// SPDX-License-Identifier: MPL-2.0

package argument

const (
	// KindCommand marks a symbol that is a command's positional slot.
	KindCommand SymbolKind = iota + 1
	// KindOption marks a symbol that is an option (flag).
	KindOption
)

type (
	// SymbolKind discriminates commands from options.
	SymbolKind int

	// Symbol is a named command or option together with the tokens the parser
	// bound to it. The binding engine builds one per evaluation.
	Symbol struct {
		Kind       SymbolKind
		Name       string
		Tokens     []string
		Definition *Definition
		// Messages overrides the catalog used for failure messages.
		Messages MessageCatalog
	}
)

// String returns "command" or "option".
func (k SymbolKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// NewCommandSymbol returns a command symbol bound to tokens.
func NewCommandSymbol(name string, def *Definition, tokens ...string) *Symbol {
	return &Symbol{Kind: KindCommand, Name: name, Tokens: tokens, Definition: def}
}

// NewOptionSymbol returns an option symbol bound to tokens.
func NewOptionSymbol(name string, def *Definition, tokens ...string) *Symbol {
	return &Symbol{Kind: KindOption, Name: name, Tokens: tokens, Definition: def}
}

// Catalog returns the symbol's message catalog, or DefaultCatalog when none
// was set.
func (s *Symbol) Catalog() MessageCatalog {
	if s.Messages != nil {
		return s.Messages
	}
	return DefaultCatalog()
}

func (s *Symbol) requiredArgumentMissing() string {
	if s.Kind == KindOption {
		return s.Catalog().RequiredArgumentMissingForOption(s.Name)
	}
	return s.Catalog().RequiredArgumentMissingForCommand(s.Name)
}

func (s *Symbol) expectsOneArgument() string {
	if s.Kind == KindOption {
		return s.Catalog().OptionExpectsOneArgument(s.Name, len(s.Tokens))
	}
	return s.Catalog().CommandExpectsOneArgument(s.Name, len(s.Tokens))
}
