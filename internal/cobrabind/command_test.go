// SPDX-License-Identifier: MPL-2.0

package cobrabind

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/invowk/argbind/internal/binding"
	"github.com/invowk/argbind/pkg/argfile"
	"github.com/invowk/argbind/pkg/types"

	"github.com/spf13/cobra"
)

const definitions = `
[[commands]]
name = "copy"
description = "Copy files to a destination."

[commands.arguments]
name = "sources"
arity = "one-or-more"
type = "[]path"

[[commands.options]]
name = "mode"
short = "m"
from_among = ["fast", "safe"]
only_from_among = true
default = ["safe"]

[[commands.options]]
name = "force"
short = "f"
type = "bool"

[[commands.options]]
name = "tag"
type = "[]string"
suggestions = ["stable", "staging"]

[[commands.options]]
name = "debug-dump"
hidden = true
`

func buildSet(t *testing.T) *argfile.CommandSet {
	t.Helper()
	f, err := argfile.Parse([]byte(definitions), argfile.FormatTOML, "inline.toml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	set, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return set
}

func newTestCommand(t *testing.T, got **binding.Invocation) *cobra.Command {
	t.Helper()
	spec, ok := buildSet(t).Lookup("copy")
	if !ok {
		t.Fatal("copy command missing")
	}
	binder := binding.NewBinder(binding.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	cmd := NewCommand(spec, binder, func(_ *cobra.Command, inv *binding.Invocation) error {
		*got = inv
		return nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

func TestNewCommand_Binds(t *testing.T) {
	t.Parallel()

	var inv *binding.Invocation
	cmd := newTestCommand(t, &inv)
	cmd.SetArgs([]string{"a.txt", "b.txt", "-f", "--tag", "x", "--tag=y"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if inv == nil {
		t.Fatal("onBound was not called")
	}
	if want := []types.FilesystemPath{"a.txt", "b.txt"}; !reflect.DeepEqual(inv.Arguments.Value, want) {
		t.Errorf("Arguments = %#v, want %#v", inv.Arguments.Value, want)
	}
	if v := inv.Options["force"]; v.Value != true {
		t.Errorf("force = %#v, want true", v)
	}
	if v := inv.Options["mode"]; v.Value != "safe" || !v.FromDefault {
		t.Errorf("mode = %#v, want default safe", v)
	}
	if v := inv.Options["tag"]; !reflect.DeepEqual(v.Value, []string{"x", "y"}) {
		t.Errorf("tag = %#v", v.Value)
	}
	if _, ok := inv.Options["debug-dump"]; ok {
		t.Error("an absent option without default should be omitted")
	}
}

func TestNewCommand_ArgsValidation(t *testing.T) {
	t.Parallel()

	var inv *binding.Invocation
	cmd := newTestCommand(t, &inv)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, binding.ErrValidationFailed) {
		t.Fatalf("Execute() error = %v, want ErrValidationFailed", err)
	}
	if err.Error() != "Required argument missing for command: 'copy'." {
		t.Errorf("message = %q", err.Error())
	}
	if inv != nil {
		t.Error("onBound must not run after a failed validation")
	}
}

func TestNewCommand_OptionFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"token outside from_among", []string{"a", "--mode", "reckless"}, "Argument 'reckless' not recognized. Must be one of: fast, safe."},
		{"flag given a value", []string{"a", "--force=yes"}, "Option 'force' does not accept arguments but 1 was provided."},
		{"single option repeated", []string{"a", "-m", "fast", "-m", "safe"}, "Option 'mode' expects a single argument but 2 were provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inv *binding.Invocation
			cmd := newTestCommand(t, &inv)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected an error")
			}
			if msgs := binding.Messages(err); len(msgs) != 1 || msgs[0] != tt.want {
				t.Errorf("Messages() = %q, want [%q]", msgs, tt.want)
			}
		})
	}
}

func TestNewCommand_Metadata(t *testing.T) {
	t.Parallel()

	var inv *binding.Invocation
	cmd := newTestCommand(t, &inv)

	if cmd.Use != "copy [SOURCES...]" {
		t.Errorf("Use = %q", cmd.Use)
	}
	if cmd.Short != "Copy files to a destination." {
		t.Errorf("Short = %q", cmd.Short)
	}
	if f := cmd.Flags().Lookup("debug-dump"); f == nil || !f.Hidden {
		t.Error("debug-dump should be a hidden flag")
	}
	if f := cmd.Flags().Lookup("force"); f == nil || f.NoOptDefVal != presenceToken || f.Shorthand != "f" {
		t.Errorf("force flag = %+v", f)
	}
	if got := cmd.Flags().Lookup("mode").Value.Type(); got != "MODE" {
		t.Errorf("mode Type() = %q, want MODE", got)
	}
}

func TestNewCommand_FlagCompletion(t *testing.T) {
	t.Parallel()

	var inv *binding.Invocation
	cmd := newTestCommand(t, &inv)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{cobra.ShellCompRequestCmd, "a", "--tag", "sta"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"stable", "staging", ":4"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("completion output = %q, want %q", lines, want)
	}
	if inv != nil {
		t.Error("completion must not bind")
	}
}

func TestAddCommands(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "root"}
	AddCommands(root, buildSet(t), binding.NewBinder(), nil)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	if !reflect.DeepEqual(names, []string{"copy"}) {
		t.Errorf("commands = %q", names)
	}
}

func TestTokenValue(t *testing.T) {
	t.Parallel()

	set := buildSet(t)
	spec, _ := set.Lookup("copy")
	force, _ := spec.Option("force")

	v := newTokenValue(force.Definition)
	if err := v.Set(presenceToken); err != nil {
		t.Fatal(err)
	}
	if len(v.Tokens()) != 0 {
		t.Errorf("bare flag recorded %q", v.Tokens())
	}
	if v.Type() != "bool" {
		t.Errorf("Type() = %q, want bool", v.Type())
	}
	_ = v.Set("yes")
	if v.String() != "yes" {
		t.Errorf("String() = %q", v.String())
	}
}

func TestNewCommand_ExecutesTwice(t *testing.T) {
	t.Parallel()

	var inv *binding.Invocation
	cmd := newTestCommand(t, &inv)

	cmd.SetArgs([]string{"a.txt", "-m", "fast", "-f", "--tag", "x"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if v := inv.Options["mode"]; v.Value != "fast" {
		t.Fatalf("first mode = %#v, want fast", v)
	}

	cmd.SetArgs([]string{"b.txt", "--tag", "y"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if v := inv.Options["mode"]; v.Value != "safe" || !v.FromDefault {
		t.Errorf("second mode = %#v, want default safe", v)
	}
	if _, ok := inv.Options["force"]; ok {
		t.Error("force from the first run leaked into the second")
	}
	if v := inv.Options["tag"]; !reflect.DeepEqual(v.Value, []string{"y"}) {
		t.Errorf("second tag = %#v, want [y]", v.Value)
	}
}

type countingProbe struct {
	files int
	dirs  int
}

func (p *countingProbe) FileExists(string) bool {
	p.files++
	return true
}

func (p *countingProbe) DirExists(string) bool {
	p.dirs++
	return false
}

func TestNewCommand_ProbesArgumentsOnce(t *testing.T) {
	t.Parallel()

	const defs = `
[[commands]]
name = "show"

[commands.arguments]
name = "file"
arity = "exactly-one"
type = "path"
existing_files_only = true
`
	f, err := argfile.Parse([]byte(defs), argfile.FormatTOML, "inline.toml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	probe := &countingProbe{}
	set, err := f.Build(argfile.WithProbe(probe))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	spec, _ := set.Lookup("show")

	var inv *binding.Invocation
	cmd := NewCommand(spec, binding.NewBinder(), func(_ *cobra.Command, got *binding.Invocation) error {
		inv = got
		return nil
	})
	cmd.SetArgs([]string{"notes.txt"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if probe.files != 1 || probe.dirs != 0 {
		t.Errorf("probe calls: files=%d dirs=%d, want files=1 dirs=0", probe.files, probe.dirs)
	}
	if inv == nil || inv.Arguments.Value != types.FilesystemPath("notes.txt") {
		t.Errorf("Arguments = %#v", inv)
	}
}
