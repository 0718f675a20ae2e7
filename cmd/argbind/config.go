// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/argbind/internal/config"
	"github.com/invowk/argbind/pkg/types"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `argbind config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage argbind configuration",
		Long: `Manage argbind configuration.

Configuration is stored in:
  - Linux: ~/.config/argbind/config.cue
  - macOS: ~/Library/Application Support/argbind/config.cue
  - Windows: %APPDATA%\argbind\config.cue

Every key can be overridden with an ARGBIND_* environment variable,
e.g. ARGBIND_UI_VERBOSE=true or ARGBIND_MESSAGES_LANGUAGE=de.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.showConfig(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓ Configuration file:"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func (app *App) showConfig(cmd *cobra.Command) error {
	cfg, path, err := config.LoadResolved(cmd.Context(), config.LoadOptions{ConfigFilePath: types.FilesystemPath(app.configPath)})
	if err != nil {
		return err
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path == "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	argfilePath := SubtitleStyle.Render("(discover argbind.{cue,toml,yaml,yml})")
	if cfg.Argfile != "" {
		argfilePath = SuccessStyle.Render(cfg.Argfile.String())
	}
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("argfile"), argfilePath)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("ui.color_scheme"), SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprint(cfg.UI.Verbose)))
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("messages.language"), SuccessStyle.Render(cfg.Messages.Language.String()))
	return nil
}
