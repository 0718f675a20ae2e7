// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/internal/testutil"
	"github.com/invowk/argbind/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Argfile != "" {
		t.Errorf("default argfile = %q, want empty", cfg.Argfile)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default color scheme = %q, want auto", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.Messages.Language != DefaultLanguage {
		t.Errorf("default language = %q, want %q", cfg.Messages.Language, DefaultLanguage)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	Reset()
	xdg := t.TempDir()
	t.Cleanup(testutil.MustSetenv(t, "XDG_CONFIG_HOME", xdg))

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if want := filepath.Join(xdg, AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride("/custom/dir")

	dir, err := ConfigDir()
	if err != nil || dir != "/custom/dir" {
		t.Errorf("ConfigDir() = %q, %v; want /custom/dir", dir, err)
	}
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))

	cfg, path, err := LoadResolved(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	if err != nil {
		t.Fatalf("LoadResolved() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto || cfg.Messages.Language != DefaultLanguage {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, "config.cue", `
argfile: "defs/commands.toml"
ui: {
	color_scheme: "dark"
	verbose: true
}
messages: language: "pt-BR"
`)

	cfg, path, err := LoadResolved(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	if err != nil {
		t.Fatalf("LoadResolved() error: %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}
	if cfg.Argfile != "defs/commands.toml" {
		t.Errorf("argfile = %q", cfg.Argfile)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Messages.Language != "pt-BR" {
		t.Errorf("language = %q", cfg.Messages.Language)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "partial.cue", "ui: verbose: true\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: types.FilesystemPath(path)})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose should come from the file")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("color scheme = %q, want default auto", cfg.UI.ColorScheme)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "config.cue", `ui: color_scheme: "neon"`+"\n")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: types.FilesystemPath(path)})
	if err == nil {
		t.Fatal("expected a schema error")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %T, want *issue.ActionableError", err)
	}
	if ae.Issue != issue.ConfigLoadFailedId || ae.Resource != path {
		t.Errorf("ActionableError = %+v", ae)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "config.cue", "container_engine: \"docker\"\n")

	if _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: types.FilesystemPath(path)}); err == nil {
		t.Fatal("closed #Config should reject unknown fields")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: types.FilesystemPath(missing)})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("Load() error = %v, want config file not found", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "ARGBIND_UI_VERBOSE", "true"))
	t.Cleanup(testutil.MustSetenv(t, "ARGBIND_MESSAGES_LANGUAGE", "de"))

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("ARGBIND_UI_VERBOSE should enable verbose")
	}
	if cfg.Messages.Language != "de" {
		t.Errorf("language = %q, want de", cfg.Messages.Language)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	path, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	cfg, resolved, err := LoadResolved(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadResolved() error: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("round-tripped config = %+v, want defaults", cfg)
	}
}

func TestGenerateCUE(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Argfile = "commands.yaml"
	out := GenerateCUE(cfg)
	for _, want := range []string{`argfile: "commands.yaml"`, `color_scheme: "auto"`, `language: "en"`} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(GenerateCUE(DefaultConfig()), "argfile") {
		t.Error("an unset argfile should be omitted")
	}
}
