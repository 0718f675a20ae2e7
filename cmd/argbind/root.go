// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the argbind command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "argbind",
		Short: "Declarative argument binding for command-line tools",
		Long: TitleStyle.Render("argbind") + SubtitleStyle.Render(" - declarative argument binding for command-line tools") + `

argbind reads a definitions file (CUE, TOML or YAML) that declares commands,
their positional argument slot and their options: how many tokens each
accepts, which values are allowed, path rules, defaults and target types.
It then validates and converts command-line tokens against it.

` + SubtitleStyle.Render("Examples:") + `
  argbind validate commands.cue          Check a definitions file
  argbind run -- copy a.txt b.txt -f     Bind tokens against 'copy'
  argbind run --line "copy 'my file'"    Split a shell-quoted line first
  argbind suggest copy --option mode     List accepted values`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.loadSettings(cmd.Context(), cmd.Flags().Changed("verbose"))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/argbind/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.argfilePath, "argfile", "", "definitions file (.cue, .toml, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVar(&app.language, "lang", "", "language of validation messages (BCP 47 tag)")

	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newSuggestCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the status of the first ExitError.
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
