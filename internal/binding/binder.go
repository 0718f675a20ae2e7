// SPDX-License-Identifier: MPL-2.0

package binding

import (
	"errors"
	"log/slog"

	"github.com/invowk/argbind/pkg/argfile"
	"github.com/invowk/argbind/pkg/argument"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Value is a bound symbol.
	Value struct {
		Name string              `json:"name"`
		Kind argument.SymbolKind `json:"-"`
		// Value is the converted value; nil when Present is false.
		Value any `json:"value"`
		// FromDefault marks a value produced by the definition's default.
		FromDefault bool `json:"from_default,omitempty"`
		// Present is false for an optional single-token slot left empty.
		Present bool `json:"present"`
	}

	// Invocation is a fully bound command line.
	Invocation struct {
		Command   string           `json:"command"`
		Arguments Value            `json:"arguments"`
		Options   map[string]Value `json:"options"`
	}

	// Binder evaluates definitions against tokens. The zero value is not
	// usable; construct with NewBinder.
	Binder struct {
		catalog argument.MessageCatalog
		logger  *slog.Logger
	}

	// Option configures a Binder.
	Option func(*Binder)
)

// WithCatalog sets the catalog used for symbols that carry none.
func WithCatalog(c argument.MessageCatalog) Option {
	return func(b *Binder) {
		if c != nil {
			b.catalog = c
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBinder returns a Binder using the default catalog and slog.Default.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		catalog: argument.DefaultCatalog(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Catalog returns the catalog the binder falls back to.
func (b *Binder) Catalog() argument.MessageCatalog { return b.catalog }

// Bind validates and converts one symbol. A failed validator yields a
// *ValidationError holding every message; a failed conversion yields a
// *ConversionError. An unbound symbol with a default takes the default
// without conversion.
func (b *Binder) Bind(sym *argument.Symbol) (Value, error) {
	s := *sym
	if s.Messages == nil {
		s.Messages = b.catalog
	}
	def := s.Definition
	v := Value{Name: s.Name, Kind: s.Kind}

	if msgs := def.Validate(&s); len(msgs) > 0 {
		b.logger.Debug("validation failed", "kind", s.Kind, "name", s.Name, "messages", len(msgs))
		return v, &ValidationError{Kind: s.Kind, Name: s.Name, Messages: msgs}
	}

	if len(s.Tokens) == 0 {
		if def.HasDefaultValue() {
			v.Value = def.DefaultValue()
			v.FromDefault = true
			v.Present = true
			b.logger.Debug("bound default", "kind", s.Kind, "name", s.Name)
			return v, nil
		}
		if def.Arity() == argument.ArityOne {
			return v, nil
		}
	}

	res := def.Convert(&s)
	if !res.Succeeded() {
		b.logger.Debug("conversion failed", "kind", s.Kind, "name", s.Name, "tokens", len(s.Tokens))
		return v, &ConversionError{Kind: s.Kind, Name: s.Name, Message: res.Message()}
	}
	v.Value = res.Value()
	v.Present = true
	b.logger.Debug("bound", "kind", s.Kind, "name", s.Name, "tokens", len(s.Tokens))
	return v, nil
}

// BindCommand binds args to the command's argument slot and options to its
// declared options. An option missing from options takes its default, or is
// omitted when it has none. Every failure is returned, joined.
func (b *Binder) BindCommand(spec *argfile.CommandSpec, args []string, options map[string][]string) (*Invocation, error) {
	argsValue, err := b.Bind(argument.NewCommandSymbol(spec.Name.String(), spec.Arguments, args...))
	return b.bindInvocation(spec, argsValue, err, options)
}

// BindOptions binds options around an argument slot that was already bound
// with Bind, so the argument validators do not run a second time.
func (b *Binder) BindOptions(spec *argfile.CommandSpec, arguments Value, options map[string][]string) (*Invocation, error) {
	return b.bindInvocation(spec, arguments, nil, options)
}

func (b *Binder) bindInvocation(spec *argfile.CommandSpec, arguments Value, argsErr error, options map[string][]string) (*Invocation, error) {
	name := spec.Name.String()
	inv := &Invocation{Command: name, Arguments: arguments, Options: make(map[string]Value)}
	var errs []error
	if argsErr != nil {
		errs = append(errs, argsErr)
	}

	unknown := maps.Keys(options)
	slices.Sort(unknown)
	for _, opt := range unknown {
		if _, ok := spec.Option(opt); !ok {
			errs = append(errs, &UnknownOptionError{Command: name, Option: opt})
		}
	}

	for _, opt := range spec.Options {
		tokens, supplied := options[opt.Name]
		if !supplied {
			if opt.Definition.HasDefaultValue() {
				inv.Options[opt.Name] = Value{
					Name:        opt.Name,
					Kind:        argument.KindOption,
					Value:       opt.Definition.DefaultValue(),
					FromDefault: true,
					Present:     true,
				}
			}
			continue
		}
		v, err := b.Bind(argument.NewOptionSymbol(opt.Name, opt.Definition, tokens...))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inv.Options[opt.Name] = v
	}

	if len(errs) > 0 {
		return inv, errors.Join(errs...)
	}
	return inv, nil
}
