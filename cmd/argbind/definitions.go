// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/pkg/argfile"
	"github.com/invowk/argbind/pkg/fspath"

	"github.com/spf13/afero"
)

// ErrArgfileNotFound is returned when no definitions file could be located.
var ErrArgfileNotFound = errors.New("no definitions file found")

// argfileCandidates are probed in the working directory, in order, when
// neither --argfile nor the config names a file.
var argfileCandidates = []string{"argbind.cue", "argbind.toml", "argbind.yaml", "argbind.yml"}

// resolveArgfile picks the definitions file: explicit path, then config,
// then the first candidate present in the working directory.
func (app *App) resolveArgfile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := app.cfg.ArgfilePath(); p != "" {
		return p.String(), nil
	}
	for _, name := range argfileCandidates {
		if ok, _ := afero.Exists(app.fs, name); ok {
			return name, nil
		}
	}
	return "", issue.NewErrorContext().
		WithOperation("find definitions file").
		WithIssue(issue.ArgfileNotFoundId).
		WithSuggestion("Pass --argfile <path>").
		WithSuggestion("Set 'argfile' in the config file").
		WithSuggestion("Create " + strings.Join(argfileCandidates, ", ") + " in the current directory").
		Wrap(ErrArgfileNotFound).
		BuildError()
}

// loadDefinitions resolves, loads and validates the definitions file.
func (app *App) loadDefinitions(explicit string) (*argfile.File, error) {
	path, err := app.resolveArgfile(explicit)
	if err != nil {
		return nil, err
	}

	f, err := argfile.LoadFS(app.fs, path)
	if err == nil {
		app.logger.Debug("definitions loaded", "path", path, "commands", len(f.Commands))
		return f, nil
	}

	ctx := issue.NewErrorContext().WithOperation("load definitions").WithResource(path).Wrap(err)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctx.WithIssue(issue.ArgfileNotFoundId).WithSuggestion("Verify the file path is correct")
	case errors.Is(err, argfile.ErrUnsupportedFormat):
		ctx.WithIssue(issue.UnsupportedFormatId).WithSuggestion("Use a .cue, .toml, .yaml or .yml file")
	default:
		ctx.WithIssue(issue.ArgfileParseErrorId).WithSuggestion(fmt.Sprintf("Run 'argbind validate %s' to list every problem", path))
	}
	return nil, ctx.BuildError()
}

// loadCommandSet loads the definitions file and seals every command.
func (app *App) loadCommandSet(explicit string) (*argfile.CommandSet, error) {
	f, err := app.loadDefinitions(explicit)
	if err != nil {
		return nil, err
	}
	return app.buildCommandSet(f)
}

// buildCommandSet seals every command of f against the app's filesystem.
func (app *App) buildCommandSet(f *argfile.File) (*argfile.CommandSet, error) {
	set, err := f.Build(argfile.WithProbe(fspath.NewProbe(app.fs)))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("build commands").
			WithResource(f.Path).
			WithIssue(issue.ArgfileParseErrorId).
			Wrap(err).
			BuildError()
	}
	return set, nil
}

// lookupCommand finds name in set or returns a command-not-found error
// listing the declared names.
func lookupCommand(set *argfile.CommandSet, name string) (*argfile.CommandSpec, error) {
	if spec, ok := set.Lookup(name); ok {
		return spec, nil
	}
	return nil, usageError(issue.NewErrorContext().
		WithOperation("find command").
		WithResource(name).
		WithIssue(issue.CommandNotFoundId).
		WithSuggestion("Declared commands: " + strings.Join(set.Names(), ", ")).
		Wrap(fmt.Errorf("command '%s' is not declared", name)).
		BuildError())
}
