// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "test.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "test.cue")
		if !errors.Is(err, original) {
			t.Errorf("error does not wrap the original: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "test.cue: ") {
			t.Errorf("error should start with the filepath, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"empty path", []string{}, ""},
		{"single element", []string{"commands"}, "commands"},
		{"nested path", []string{"ui", "color_scheme"}, "ui.color_scheme"},
		{"array index", []string{"commands", "0", "name"}, "commands[0].name"},
		{"multiple indices", []string{"commands", "1", "options", "2", "arity"}, "commands[1].options[2].arity"},
		{"trailing index", []string{"commands", "0", "from_among", "3"}, "commands[0].from_among[3]"},
		{"leading digits are a field", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"within limit", 10, false},
		{"at limit", 100, false},
		{"over limit", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "test.cue")
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrFileTooLarge) {
				t.Fatalf("error = %v, want ErrFileTooLarge", err)
			}
			for _, want := range []string{"test.cue", "101", "100"} {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err, want)
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "single issue with path",
			err:  &ValidationError{FilePath: "commands.cue", Issues: []Issue{{Path: "commands[0].name", Message: "expected string, got int"}}},
			want: "commands.cue: commands[0].name: expected string, got int",
		},
		{
			name: "single issue without path",
			err:  &ValidationError{FilePath: "config.cue", Issues: []Issue{{Message: "syntax error"}}},
			want: "config.cue: syntax error",
		},
		{
			name: "several issues",
			err: &ValidationError{FilePath: "config.cue", Issues: []Issue{
				{Path: "ui.verbose", Message: "conflicting values"},
				{Path: "argfile", Message: "incomplete value"},
			}},
			want: "config.cue: validation failed:\n  ui.verbose: conflicting values\n  argfile: incomplete value",
		},
		{
			name: "no issues",
			err:  &ValidationError{FilePath: "config.cue"},
			want: "config.cue: validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCUEPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    CUEPath
		wantErr bool
	}{
		{"simple path", "commands", false},
		{"indexed path", "commands[0].name", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("CUEPath(%q).Validate() error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCUEPath) {
				t.Errorf("CUEPath(%q).Validate() error does not wrap ErrInvalidCUEPath", tt.path)
			}
		})
	}
}
