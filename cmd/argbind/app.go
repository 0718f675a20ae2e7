// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/argbind/internal/binding"
	"github.com/invowk/argbind/internal/config"
	"github.com/invowk/argbind/internal/logging"
	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared state. Every command handler receives
	// the App and reads settings from it once the root PersistentPreRun ran.
	App struct {
		Config config.Provider
		fs     afero.Fs
		stdout io.Writer
		stderr io.Writer

		// Flag values.
		verbose     bool
		configPath  string
		argfilePath string
		language    string

		cfg     *config.Config
		logger  *slog.Logger
		catalog argument.MessageCatalog
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Fs     afero.Fs
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp builds an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		fs:     deps.Fs,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.fs == nil {
		app.fs = afero.NewOsFs()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	app.cfg = config.DefaultConfig()
	app.logger = slog.Default()
	app.catalog = argument.DefaultCatalog()
	return app
}

// loadSettings loads the configuration, then applies it beneath the flags.
// A broken config file is reported as a warning; defaults apply instead.
func (app *App) loadSettings(ctx context.Context, verboseFlagSet bool) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(app.configPath)})
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, app.verbose))
		cfg = config.DefaultConfig()
	}
	app.cfg = cfg

	if !verboseFlagSet {
		app.verbose = cfg.UI.Verbose
	}
	app.logger = logging.Setup(app.verbose, app.stderr)

	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}

	lang := app.language
	if lang == "" {
		lang = cfg.Messages.Language.String()
	}
	app.catalog = argument.NewCatalog(argument.ParseLanguage(lang))
	app.logger.Debug("settings loaded", "verbose", app.verbose, "language", lang, "colorScheme", cfg.UI.ColorScheme)
}

// binder returns a binder using the selected catalog and logger.
func (app *App) binder() *binding.Binder {
	return binding.NewBinder(binding.WithCatalog(app.catalog), binding.WithLogger(app.logger))
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (app *App) glamourStyle() string {
	switch app.cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
