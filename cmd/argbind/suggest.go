// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/argbind/internal/issue"

	"github.com/spf13/cobra"
)

func newSuggestCommand(app *App) *cobra.Command {
	var option string

	cmd := &cobra.Command{
		Use:   "suggest <command> [prefix]",
		Short: "List suggestions for a command's arguments or one of its options",
		Long: `List the values a declared command (or one of its options, with --option)
suggests for completion. Matching is a case-insensitive prefix match.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			set, err := app.loadCommandSet(app.argfilePath)
			if err != nil {
				return err
			}
			spec, err := lookupCommand(set, args[0])
			if err != nil {
				return err
			}

			def := spec.Arguments
			if option != "" {
				opt, ok := spec.Option(option)
				if !ok {
					return usageError(issue.NewErrorContext().
						WithOperation("find option").
						WithResource(option).
						WithSuggestion(fmt.Sprintf("Run 'argbind run -- %s --help' to list its options", args[0])).
						Wrap(fmt.Errorf("command '%s' has no option '%s'", args[0], option)).
						BuildError())
				}
				def = opt.Definition
			}

			prefix := ""
			if len(args) == 2 {
				prefix = args[1]
			}
			for _, s := range def.Suggestions().Suggest(prefix) {
				fmt.Fprintln(app.stdout, s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&option, "option", "", "suggest values for this option instead of the arguments")
	return cmd
}
