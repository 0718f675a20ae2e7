// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/invowk/argbind/pkg/argfile"

	"github.com/spf13/cobra"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [argfile]",
		Short: "Check a definitions file and list its commands",
		Long: `Load a definitions file, check every rule the schema cannot express,
convert every default, and list the commands it declares.

Without an argument the file is resolved like 'argbind run' does:
--argfile, then the config file, then argbind.{cue,toml,yaml,yml}.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := app.argfilePath
			if len(args) == 1 {
				path = args[0]
			}
			f, err := app.loadDefinitions(path)
			if err != nil {
				return err
			}
			set, err := app.buildCommandSet(f)
			if err != nil {
				return err
			}
			printCommandSet(app.stdout, f.Path, set)
			return nil
		},
	}
}

func printCommandSet(w io.Writer, path string, set *argfile.CommandSet) {
	commands := set.Commands()
	fmt.Fprintf(w, "%s %s: %d command(s)\n\n", SuccessStyle.Render("✓"), path, len(commands))
	for _, spec := range commands {
		line := "  " + CmdStyle.Render(spec.Name.String())
		line += SubtitleStyle.Render(fmt.Sprintf("  arguments: %s, options: %d", spec.Arguments.Arity(), len(spec.Options)))
		if spec.Hidden {
			line += VerboseStyle.Render("  (hidden)")
		}
		fmt.Fprintln(w, line)
		if summary := spec.Description.Summary(); summary != "" {
			fmt.Fprintln(w, "    "+summary)
		}
	}
}
