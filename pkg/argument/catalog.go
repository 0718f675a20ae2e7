// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Each key is also the English format string.
const (
	msgRequiredForCommand   = "Required argument missing for command: '%s'."
	msgRequiredForOption    = "Required argument missing for option: '%s'."
	msgCommandExpectsOne    = "Command '%s' expects a single argument but %d were provided."
	msgOptionExpectsOne     = "Option '%s' expects a single argument but %d were provided."
	msgCommandNoArguments   = "Command '%s' does not accept arguments but %d were provided."
	msgOptionNoArguments    = "Option '%s' does not accept arguments but %d were provided."
	msgFileDoesNotExist     = "File does not exist: '%s'."
	msgUnrecognizedToken    = "Argument '%s' not recognized. Must be one of: %s."
	msgCannotParseArgument  = "Cannot parse argument '%s' as expected type '%s'."
	msgUnsupportedArity     = "Conversion is not supported for arity '%s'."
	msgUnrecognizedNoChoice = "Argument '%s' not recognized."
)

// MessageCatalog produces the user-facing failure messages of validators and
// converters. Implementations must be safe for concurrent use.
type MessageCatalog interface {
	RequiredArgumentMissingForCommand(name string) string
	RequiredArgumentMissingForOption(name string) string
	CommandExpectsOneArgument(name string, count int) string
	OptionExpectsOneArgument(name string, count int) string
	FileDoesNotExist(path string) string
	NoArgumentsAllowed(kind SymbolKind, name string, count int) string
	UnrecognizedToken(token string, valid []string) string
	CannotParseArgument(token, typeName string) string
	UnsupportedArity(arity Arity) string
}

type printerCatalog struct {
	p *message.Printer
}

var (
	// supportedLanguages lists the catalog languages; the first is the
	// fallback for unmatched tags.
	supportedLanguages = []language.Tag{language.English, language.German}

	messageBuilder = sync.OnceValue(func() *catalog.Builder {
		b := catalog.NewBuilder(catalog.Fallback(language.English))

		en := language.English
		mustSet(b, en, msgRequiredForCommand)
		mustSet(b, en, msgRequiredForOption)
		mustSet(b, en, msgCommandExpectsOne, countSelect("Command '%[1]s' expects a single argument but %[2]d", " was provided.", " were provided."))
		mustSet(b, en, msgOptionExpectsOne, countSelect("Option '%[1]s' expects a single argument but %[2]d", " was provided.", " were provided."))
		mustSet(b, en, msgCommandNoArguments, countSelect("Command '%[1]s' does not accept arguments but %[2]d", " was provided.", " were provided."))
		mustSet(b, en, msgOptionNoArguments, countSelect("Option '%[1]s' does not accept arguments but %[2]d", " was provided.", " were provided."))
		mustSet(b, en, msgFileDoesNotExist)
		mustSet(b, en, msgUnrecognizedToken)
		mustSet(b, en, msgUnrecognizedNoChoice)
		mustSet(b, en, msgCannotParseArgument)
		mustSet(b, en, msgUnsupportedArity)

		de := language.German
		mustSet(b, de, msgRequiredForCommand, catalog.String("Erforderliches Argument fehlt für Befehl: '%s'."))
		mustSet(b, de, msgRequiredForOption, catalog.String("Erforderliches Argument fehlt für Option: '%s'."))
		mustSet(b, de, msgCommandExpectsOne, countSelect("Befehl '%[1]s' erwartet ein einzelnes Argument, aber %[2]d", " wurde angegeben.", " wurden angegeben."))
		mustSet(b, de, msgOptionExpectsOne, countSelect("Option '%[1]s' erwartet ein einzelnes Argument, aber %[2]d", " wurde angegeben.", " wurden angegeben."))
		mustSet(b, de, msgCommandNoArguments, countSelect("Befehl '%[1]s' akzeptiert keine Argumente, aber %[2]d", " wurde angegeben.", " wurden angegeben."))
		mustSet(b, de, msgOptionNoArguments, countSelect("Option '%[1]s' akzeptiert keine Argumente, aber %[2]d", " wurde angegeben.", " wurden angegeben."))
		mustSet(b, de, msgFileDoesNotExist, catalog.String("Datei existiert nicht: '%s'."))
		mustSet(b, de, msgUnrecognizedToken, catalog.String("Argument '%s' nicht erkannt. Erlaubt sind: %s."))
		mustSet(b, de, msgUnrecognizedNoChoice, catalog.String("Argument '%s' nicht erkannt."))
		mustSet(b, de, msgCannotParseArgument, catalog.String("Argument '%s' kann nicht als Typ '%s' gelesen werden."))
		mustSet(b, de, msgUnsupportedArity, catalog.String("Konvertierung wird für Stelligkeit '%s' nicht unterstützt."))
		return b
	})

	defaultCatalog = sync.OnceValue(func() MessageCatalog {
		return NewCatalog(language.English)
	})
)

// DefaultCatalog returns the English catalog.
func DefaultCatalog() MessageCatalog {
	return defaultCatalog()
}

// NewCatalog returns a catalog for the closest supported match of tag
// (English or German). Unsupported languages fall back to English.
func NewCatalog(tag language.Tag) MessageCatalog {
	_, idx, _ := language.NewMatcher(supportedLanguages).Match(tag)
	return &printerCatalog{
		p: message.NewPrinter(supportedLanguages[idx], message.Catalog(messageBuilder())),
	}
}

// ParseLanguage parses a BCP 47 tag, falling back to English when s is empty
// or malformed.
func ParseLanguage(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// mustSet registers key for tag with either the key itself as the format or
// the given messages. The message table is static, so a failure is a bug.
func mustSet(b *catalog.Builder, tag language.Tag, key string, msg ...catalog.Message) {
	if len(msg) == 0 {
		msg = []catalog.Message{catalog.String(key)}
	}
	if err := b.Set(tag, key, msg...); err != nil {
		panic(err)
	}
}

// countSelect picks the singular or plural suffix on the second argument.
func countSelect(prefix, one, other string) catalog.Message {
	return plural.Selectf(2, "%d",
		plural.One, prefix+one,
		plural.Other, prefix+other,
	)
}

func (c *printerCatalog) RequiredArgumentMissingForCommand(name string) string {
	return c.p.Sprintf(msgRequiredForCommand, name)
}

func (c *printerCatalog) RequiredArgumentMissingForOption(name string) string {
	return c.p.Sprintf(msgRequiredForOption, name)
}

func (c *printerCatalog) CommandExpectsOneArgument(name string, count int) string {
	return c.p.Sprintf(msgCommandExpectsOne, name, count)
}

func (c *printerCatalog) OptionExpectsOneArgument(name string, count int) string {
	return c.p.Sprintf(msgOptionExpectsOne, name, count)
}

func (c *printerCatalog) FileDoesNotExist(path string) string {
	return c.p.Sprintf(msgFileDoesNotExist, path)
}

func (c *printerCatalog) NoArgumentsAllowed(kind SymbolKind, name string, count int) string {
	if kind == KindOption {
		return c.p.Sprintf(msgOptionNoArguments, name, count)
	}
	return c.p.Sprintf(msgCommandNoArguments, name, count)
}

func (c *printerCatalog) UnrecognizedToken(token string, valid []string) string {
	if len(valid) == 0 {
		return c.p.Sprintf(msgUnrecognizedNoChoice, token)
	}
	return c.p.Sprintf(msgUnrecognizedToken, token, strings.Join(valid, ", "))
}

func (c *printerCatalog) CannotParseArgument(token, typeName string) string {
	return c.p.Sprintf(msgCannotParseArgument, token, typeName)
}

func (c *printerCatalog) UnsupportedArity(arity Arity) string {
	return c.p.Sprintf(msgUnsupportedArity, arity.String())
}
