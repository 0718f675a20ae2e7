// SPDX-License-Identifier: MPL-2.0

package cobrabind

import (
	"fmt"
	"reflect"

	"github.com/invowk/argbind/internal/binding"
	"github.com/invowk/argbind/pkg/argfile"
	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/types"

	"github.com/spf13/cobra"
)

var (
	pathType      = reflect.TypeFor[types.FilesystemPath]()
	pathSliceType = reflect.TypeFor[[]types.FilesystemPath]()
)

// BoundFunc receives a successfully bound invocation.
type BoundFunc func(cmd *cobra.Command, inv *binding.Invocation) error

// NewCommand builds a cobra command for spec. Args binds the argument slot,
// completion serves suggestion sources, and RunE binds the options around
// that slot and hands the invocation to onBound.
//
// Args also drains the option tokens recorded during flag parsing, so the
// command can be executed more than once.
func NewCommand(spec *argfile.CommandSpec, binder *binding.Binder, onBound BoundFunc) *cobra.Command {
	name := spec.Name.String()
	values := make(map[string]*tokenValue, len(spec.Options))

	var (
		bound   binding.Value
		options map[string][]string
	)

	cmd := &cobra.Command{
		Use:    usageLine(name, spec.Arguments),
		Short:  spec.Description.Summary(),
		Long:   spec.Description.String(),
		Hidden: spec.Hidden,
		Args: func(cmd *cobra.Command, args []string) error {
			options = drainOptions(cmd, values)
			v, err := binder.Bind(argument.NewCommandSymbol(name, spec.Arguments, args...))
			if err != nil {
				return err
			}
			bound = v
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return complete(spec.Arguments, toComplete)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := binder.BindOptions(spec, bound, options)
			if err != nil {
				return err
			}
			if onBound == nil {
				return nil
			}
			return onBound(cmd, inv)
		},
	}

	for i := range spec.Options {
		opt := &spec.Options[i]
		v := newTokenValue(opt.Definition)
		values[opt.Name] = v

		help := opt.Definition.Help()
		flag := cmd.Flags().VarPF(v, opt.Name, opt.Short, help.Description.Summary())
		if opt.Definition.Arity() == argument.ArityZero {
			flag.NoOptDefVal = presenceToken
		}
		if help.Hidden {
			flag.Hidden = true
		}

		def := opt.Definition
		// Registration only fails for unknown or duplicate flag names, which
		// argfile validation already rules out.
		_ = cmd.RegisterFlagCompletionFunc(opt.Name, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return complete(def, toComplete)
		})
	}

	return cmd
}

// drainOptions returns the tokens of every option given on the command line
// and clears the recorded tokens and the flags' changed state.
func drainOptions(cmd *cobra.Command, values map[string]*tokenValue) map[string][]string {
	options := make(map[string][]string)
	for optName, v := range values {
		f := cmd.Flags().Lookup(optName)
		if f == nil || !f.Changed {
			continue
		}
		options[optName] = v.Tokens()
		v.reset()
		f.Changed = false
	}
	return options
}

// AddCommands adds one cobra command per entry of set to parent.
func AddCommands(parent *cobra.Command, set *argfile.CommandSet, binder *binding.Binder, onBound BoundFunc) {
	for _, spec := range set.Commands() {
		parent.AddCommand(NewCommand(&spec, binder, onBound))
	}
}

func complete(def *argument.Definition, prefix string) ([]string, cobra.ShellCompDirective) {
	directive := cobra.ShellCompDirectiveNoFileComp
	if t := def.ValueType(); t == pathType || t == pathSliceType {
		directive = cobra.ShellCompDirectiveDefault
	}
	return def.Suggestions().Suggest(prefix), directive
}

func usageLine(name string, def *argument.Definition) string {
	placeholder := def.Help().Name
	if placeholder == "" {
		placeholder = "args"
	}
	switch def.Arity() {
	case argument.ArityOne:
		return fmt.Sprintf("%s [%s]", name, placeholder)
	case argument.ArityMany:
		return fmt.Sprintf("%s [%s...]", name, placeholder)
	default:
		return name
	}
}
