// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/argbind/internal/binding"
	"github.com/invowk/argbind/internal/cobrabind"
	"github.com/invowk/argbind/pkg/argfile"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"
)

// ErrLineAndArgs is returned when --line is combined with positional tokens.
var ErrLineAndArgs = errors.New("--line cannot be combined with positional tokens")

func newRunCommand(app *App) *cobra.Command {
	var (
		line   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] [--] <command> [tokens...]",
		Short: "Bind tokens against a declared command",
		Long: `Bind tokens against a command declared in the definitions file and
print the converted values.

Everything after the first positional token (or after '--') belongs to the
declared command, flags included.`,
		Example: `  argbind run -- copy a.txt b.txt --mode fast
  argbind run --json -- copy a.txt
  argbind run --line "copy 'with space.txt' -f"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := runTokens(args, line)
			if err != nil {
				return usageError(err)
			}
			set, err := app.loadCommandSet(app.argfilePath)
			if err != nil {
				return err
			}
			inv, err := app.bindTokens(cmd.Context(), set, tokens)
			if err != nil || inv == nil {
				return err
			}
			if asJSON {
				return writeInvocationJSON(app.stdout, inv)
			}
			fmt.Fprint(app.stdout, renderInvocation(inv))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&line, "line", "", "shell-quoted command line to split into tokens")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print bound values as JSON")
	return cmd
}

// runTokens returns args, or the shell words of line when it is set.
func runTokens(args []string, line string) ([]string, error) {
	if line == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, ErrLineAndArgs
	}
	words, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to split --line: %w", err)
	}
	return words, nil
}

// bindTokens executes tokens against a cobra tree built from set. It returns
// a nil Invocation when cobra handled the tokens itself (help).
func (app *App) bindTokens(ctx context.Context, set *argfile.CommandSet, tokens []string) (*binding.Invocation, error) {
	if len(tokens) == 0 {
		return nil, usageError(fmt.Errorf("no command given; declared commands: %v", set.Names()))
	}
	if tokens[0] != "help" {
		if _, err := lookupCommand(set, tokens[0]); err != nil {
			return nil, err
		}
	}

	inner := &cobra.Command{
		Use:           "argbind run",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	inner.CompletionOptions.DisableDefaultCmd = true
	inner.SetOut(app.stdout)
	inner.SetErr(app.stderr)

	var bound *binding.Invocation
	cobrabind.AddCommands(inner, set, app.binder(), func(_ *cobra.Command, inv *binding.Invocation) error {
		bound = inv
		return nil
	})

	inner.SetArgs(tokens)
	if err := inner.ExecuteContext(ctx); err != nil {
		if isBindingError(err) {
			return nil, usageError(&bindingFailure{command: tokens[0], err: err})
		}
		return nil, usageError(err)
	}
	return bound, nil
}
