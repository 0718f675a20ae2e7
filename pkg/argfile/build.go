// SPDX-License-Identifier: MPL-2.0

package argfile

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/fspath"
	"github.com/invowk/argbind/pkg/platform"
	"github.com/invowk/argbind/pkg/types"
)

type (
	// OptionSpec is a sealed option.
	OptionSpec struct {
		Name       string
		Short      string
		Definition *argument.Definition
	}

	// CommandSpec is a sealed command, ready for binding.
	CommandSpec struct {
		Name        types.SymbolName
		Description types.DescriptionText
		Hidden      bool
		// Arguments is never nil: commands without an arguments slot get
		// argument.NoArgument().
		Arguments *argument.Definition
		Options   []OptionSpec
	}

	// CommandSet is the sealed form of a File, in declaration order.
	CommandSet struct {
		commands []CommandSpec
		index    map[string]int
	}

	buildConfig struct {
		probe fspath.Probe
		goos  string
	}

	// BuildOption configures Build.
	BuildOption func(*buildConfig)
)

// WithProbe sets the probe used by existing_files_only checks.
func WithProbe(p fspath.Probe) BuildOption {
	return func(c *buildConfig) {
		c.probe = p
	}
}

// WithGOOS sets the platform whose rules legal_paths_only enforces.
func WithGOOS(goos string) BuildOption {
	return func(c *buildConfig) {
		c.goos = goos
	}
}

func newBuildConfig(opts []BuildOption) *buildConfig {
	cfg := &buildConfig{goos: platform.Current()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.probe == nil {
		cfg.probe = fspath.OSProbe()
	}
	return cfg
}

// Build seals every command in the file.
func (f *File) Build(opts ...BuildOption) (*CommandSet, error) {
	cfg := newBuildConfig(opts)
	set := &CommandSet{index: make(map[string]int, len(f.Commands))}
	for i := range f.Commands {
		spec, err := f.Commands[i].build(cfg)
		if err != nil {
			return nil, err
		}
		set.index[string(spec.Name)] = len(set.commands)
		set.commands = append(set.commands, *spec)
	}
	return set, nil
}

// Build seals the command's argument slot and options.
func (c *Command) Build(opts ...BuildOption) (*CommandSpec, error) {
	return c.build(newBuildConfig(opts))
}

func (c *Command) build(cfg *buildConfig) (*CommandSpec, error) {
	spec := &CommandSpec{
		Name:        c.Name,
		Description: c.Description,
		Hidden:      c.Hidden,
		Arguments:   argument.NoArgument(),
	}
	if c.Arguments != nil {
		def, err := c.Arguments.definition(false, cfg)
		if err != nil {
			return nil, fmt.Errorf("command '%s' arguments: %w", c.Name, err)
		}
		spec.Arguments = def
	}
	for i := range c.Options {
		opt := &c.Options[i]
		def, err := opt.definition(true, cfg)
		if err != nil {
			return nil, fmt.Errorf("command '%s' option '%s': %w", c.Name, opt.Name, err)
		}
		spec.Options = append(spec.Options, OptionSpec{Name: opt.Name, Short: opt.Short, Definition: def})
	}
	return spec, nil
}

func (s *Slot) definition(isOption bool, cfg *buildConfig) (*argument.Definition, error) {
	arity := s.EffectiveArity(isOption)
	typ := s.EffectiveType(isOption)
	target := typ.ReflectType()
	if target == nil {
		return nil, &InvalidValueTypeError{Value: typ}
	}

	b := argument.NewBuilder().WithHelp(argument.HelpDetail{
		Name:        s.helpName(),
		Description: s.Description,
		Hidden:      s.Hidden,
	})
	if len(s.FromAmong) > 0 {
		b.FromAmong(s.FromAmong...)
	}
	if s.OnlyFromAmong {
		b.OnlyValidTokens()
	}
	if len(s.Suggestions) > 0 {
		b.AddSuggestions(s.Suggestions...)
	}
	if s.LegalPathsOnly {
		b.LegalFilePathsOnlyFor(cfg.goos)
	}
	if s.ExistingFilesOnly {
		b.ExistingFilesOnlyIn(cfg.probe)
	}

	re, err := s.Pattern.Compile()
	if err != nil {
		return nil, err
	}
	if re != nil {
		b.AddValidator(matchPattern(re))
	}

	if len(s.Default) > 0 {
		defaults := slices.Clone(s.Default)
		if _, err := convertTokens(target, arity, defaults); err != nil {
			return nil, fmt.Errorf("invalid default %q: %w", defaults, err)
		}
		// Each call returns a freshly converted value.
		b.WithDefaultValue(func() any {
			v, err := convertTokens(target, arity, defaults)
			if err != nil {
				slog.Debug("default conversion failed", "default", defaults, "error", err)
				return nil
			}
			return v
		})
	}

	if typ.Elem() == TypeString {
		switch arity {
		case ArityExactlyOne:
			return b.ExactlyOne(), nil
		case ArityZeroOrOne:
			return b.ZeroOrOne(), nil
		case ArityZeroOrMore:
			return b.ZeroOrMore(), nil
		case ArityOneOrMore:
			return b.OneOrMore(), nil
		}
	}

	switch arity {
	case ArityZero:
		return b.None(), nil
	case ArityExactlyOne:
		b.AddValidator(argument.RequireExactlyOne)
	case ArityZeroOrOne:
		b.AddValidator(argument.RequireAtMostOne)
	case ArityOneOrMore:
		b.AddValidator(argument.RequireAtLeastOne)
	}
	return b.ConvertTo(target, arity.Arity()), nil
}

func (s *Slot) helpName() string {
	if s.Name == "" {
		return "ARGS"
	}
	return strings.ToUpper(strings.ReplaceAll(s.Name, "-", "_"))
}

func matchPattern(re *regexp.Regexp) argument.Validator {
	return func(sym *argument.Symbol) string {
		for _, tok := range sym.Tokens {
			if !re.MatchString(tok) {
				return fmt.Sprintf("Argument '%s' does not match the pattern '%s'.", tok, re)
			}
		}
		return ""
	}
}

// Commands returns the sealed commands in declaration order.
func (cs *CommandSet) Commands() []CommandSpec {
	return slices.Clone(cs.commands)
}

// Names returns the command names in declaration order.
func (cs *CommandSet) Names() []string {
	names := make([]string, len(cs.commands))
	for i := range cs.commands {
		names[i] = string(cs.commands[i].Name)
	}
	return names
}

// Lookup returns the command named name.
func (cs *CommandSet) Lookup(name string) (*CommandSpec, bool) {
	i, ok := cs.index[name]
	if !ok {
		return nil, false
	}
	return &cs.commands[i], true
}

// Option returns the option named name.
func (c *CommandSpec) Option(name string) (*OptionSpec, bool) {
	for i := range c.Options {
		if c.Options[i].Name == name {
			return &c.Options[i], true
		}
	}
	return nil, false
}
