// SPDX-License-Identifier: MPL-2.0

package argfile

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/typeconv"
	"github.com/invowk/argbind/pkg/types"
)

type (
	// ValidationError is a single problem found in a definitions file.
	ValidationError struct {
		// Field locates the problem, e.g. "command 'copy' option 'mode'".
		Field   string
		Message string
	}

	// ValidationErrors collects every problem found in one pass.
	ValidationErrors []ValidationError
)

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Error implements the error interface by listing every problem.
func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}
	var b strings.Builder
	b.WriteString("validation failed with " + strconv.Itoa(len(errs)) + " errors:")
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Validate checks the rules the schema cannot express and collects every
// violation. TOML and YAML documents rely on it for the schema rules too.
func (f *File) Validate() ValidationErrors {
	var errs ValidationErrors
	if len(f.Commands) == 0 {
		errs = append(errs, ValidationError{Message: "at least one command is required"})
	}

	seen := make(map[types.SymbolName]bool, len(f.Commands))
	for i := range f.Commands {
		cmd := &f.Commands[i]
		field := fmt.Sprintf("command #%d", i+1)
		if err := cmd.Name.Validate(); err != nil {
			errs = append(errs, ValidationError{Field: field, Message: err.Error()})
		} else {
			field = fmt.Sprintf("command '%s'", cmd.Name)
		}
		if seen[cmd.Name] {
			errs = append(errs, ValidationError{Field: field, Message: "duplicate command name"})
		}
		seen[cmd.Name] = true
		if err := cmd.Description.Validate(); err != nil {
			errs = append(errs, ValidationError{Field: field, Message: err.Error()})
		}
		errs = append(errs, cmd.validateSlots(field)...)
	}
	return errs
}

func (c *Command) validateSlots(field string) ValidationErrors {
	var errs ValidationErrors
	if c.Arguments != nil {
		argField := field + " arguments"
		if c.Arguments.Short != "" {
			errs = append(errs, ValidationError{Field: argField, Message: "short is only allowed on options"})
		}
		if c.Arguments.Name != "" {
			if err := types.SymbolName(c.Arguments.Name).Validate(); err != nil {
				errs = append(errs, ValidationError{Field: argField, Message: err.Error()})
			}
		}
		errs = append(errs, c.Arguments.validate(argField, false)...)
	}

	names := make(map[string]bool, len(c.Options))
	shorts := make(map[string]bool, len(c.Options))
	for i := range c.Options {
		opt := &c.Options[i]
		optField := fmt.Sprintf("%s option #%d", field, i+1)
		if err := types.SymbolName(opt.Name).Validate(); err != nil {
			errs = append(errs, ValidationError{Field: optField, Message: err.Error()})
		} else {
			optField = fmt.Sprintf("%s option '%s'", field, opt.Name)
		}
		if names[opt.Name] {
			errs = append(errs, ValidationError{Field: optField, Message: "duplicate option name"})
		}
		names[opt.Name] = true
		if opt.Short != "" {
			if utf8.RuneCountInString(opt.Short) != 1 || !isASCIILetter(opt.Short[0]) {
				errs = append(errs, ValidationError{Field: optField, Message: fmt.Sprintf("short %q must be a single letter", opt.Short)})
			}
			if shorts[opt.Short] {
				errs = append(errs, ValidationError{Field: optField, Message: fmt.Sprintf("duplicate short %q", opt.Short)})
			}
			shorts[opt.Short] = true
		}
		errs = append(errs, opt.validate(optField, true)...)
	}
	return errs
}

func (s *Slot) validate(field string, isOption bool) ValidationErrors {
	var errs ValidationErrors
	add := func(msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if err := s.Description.Validate(); err != nil {
		add(err.Error())
	}
	if ok, verrs := s.Arity.IsValid(); !ok {
		add(verrs[0].Error())
		return errs
	}
	if ok, verrs := s.Type.IsValid(); !ok {
		add(verrs[0].Error())
		return errs
	}
	if err := s.Pattern.Validate(); err != nil {
		add(err.Error())
	}

	arity := s.EffectiveArity(isOption)
	typ := s.EffectiveType(isOption)
	switch arity {
	case ArityZero:
		if typ != TypeBool {
			add(fmt.Sprintf("arity %q requires type bool, got %q", arity, typ))
		}
		if len(s.Default) > 0 {
			add(fmt.Sprintf("arity %q cannot have a default", arity))
		}
	case ArityExactlyOne, ArityZeroOrOne:
		if typ.IsList() {
			add(fmt.Sprintf("arity %q binds one token and cannot use list type %q", arity, typ))
		}
		if len(s.Default) > 1 {
			add(fmt.Sprintf("arity %q allows at most one default value, got %d", arity, len(s.Default)))
		}
	case ArityZeroOrMore, ArityOneOrMore:
		if !typ.IsList() {
			add(fmt.Sprintf("arity %q binds many tokens and requires a list type, got %q", arity, typ))
		}
	}

	if s.OnlyFromAmong && len(s.FromAmong) == 0 {
		add("only_from_among requires a non-empty from_among")
	}
	if (s.ExistingFilesOnly || s.LegalPathsOnly) && typ.Elem() != TypePath && typ.Elem() != TypeString {
		add(fmt.Sprintf("path checks require type path or string, got %q", typ))
	}

	if len(s.Default) > 0 && len(errs) == 0 {
		if _, err := convertTokens(typ.ReflectType(), arity, s.Default); err != nil {
			add(fmt.Sprintf("default %q does not convert to %s: %v", s.Default, typ, err))
		}
	}
	return errs
}

// convertTokens converts tokens the way the sealed definition will.
func convertTokens(t reflect.Type, arity ArityName, tokens []string) (any, error) {
	if arity.Arity() == argument.ArityMany {
		return typeconv.ConvertMany(t, tokens)
	}
	return typeconv.ConvertOne(t, tokens[0])
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
