// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/argbind/pkg/fspath"
	"github.com/invowk/argbind/pkg/platform"
	"github.com/invowk/argbind/pkg/types"
)

func TestParseFor_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		goos  string
		input string
	}{
		{"empty", platform.Linux, ""},
		{"whitespace only", platform.Linux, "   "},
		{"null byte", platform.Linux, "file\x00.txt"},
		{"bell character", platform.Linux, "bad\aname"},
		{"newline", platform.Linux, "two\nlines"},
		{"delete character", platform.Linux, "del\x7f"},
		{"invalid utf-8", platform.Linux, "bad\xffbyte"},
		{"too long", platform.Linux, strings.Repeat("a", fspath.MaxPathLength+1)},
		{"windows reserved char", platform.Windows, "what?.txt"},
		{"windows pipe", platform.Windows, `dir\a|b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fspath.ParseFor(tt.goos, tt.input)
			if err == nil {
				t.Fatalf("ParseFor(%q, %q) returned nil, want error", tt.goos, tt.input)
			}
			if !errors.Is(err, fspath.ErrMalformedPath) {
				t.Errorf("error should wrap ErrMalformedPath, got: %v", err)
			}
			var mErr *fspath.MalformedPathError
			if !errors.As(err, &mErr) {
				t.Errorf("error should be *MalformedPathError, got: %T", err)
			}
			if errors.Is(err, fspath.ErrUnsupportedPathForm) {
				t.Error("malformed path error must not also match ErrUnsupportedPathForm")
			}
		})
	}
}

func TestParseFor_UnsupportedForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"alternate data stream", `C:\data\file.txt:stream`},
		{"colon in relative path", "file:name"},
		{"verbatim namespace", `\\?\C:\long\path`},
		{"device namespace", `\\.\PhysicalDrive0`},
		{"reserved device name", `logs\nul.txt`},
		{"reserved device name forward slash", "out/COM1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fspath.ParseFor(platform.Windows, tt.input)
			if err == nil {
				t.Fatalf("ParseFor(windows, %q) returned nil, want error", tt.input)
			}
			if !errors.Is(err, fspath.ErrUnsupportedPathForm) {
				t.Errorf("error should wrap ErrUnsupportedPathForm, got: %v", err)
			}
			var uErr *fspath.UnsupportedPathFormError
			if !errors.As(err, &uErr) {
				t.Fatalf("error should be *UnsupportedPathFormError, got: %T", err)
			}
			if uErr.OS != platform.Windows {
				t.Errorf("UnsupportedPathFormError.OS = %q, want %q", uErr.OS, platform.Windows)
			}
		})
	}
}

func TestParseFor_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		goos  string
		input string
	}{
		{"relative", platform.Linux, "./docs/readme.md"},
		{"absolute", platform.Linux, "/etc/hosts"},
		{"spaces", platform.Linux, "my file.txt"},
		{"colon allowed on linux", platform.Linux, "file:name"},
		{"reserved name allowed on linux", platform.Linux, "nul"},
		{"unicode", platform.Linux, "données/été.txt"},
		{"drive letter", platform.Windows, `C:\Users\me\file.txt`},
		{"windows relative", platform.Windows, `docs\readme.md`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := fspath.ParseFor(tt.goos, tt.input)
			if err != nil {
				t.Fatalf("ParseFor(%q, %q) returned unexpected error: %v", tt.goos, tt.input, err)
			}
			if p.String() != tt.input {
				t.Errorf("Path.String() = %q, want %q", p.String(), tt.input)
			}
			if p.FilesystemPath() != types.FilesystemPath(tt.input) {
				t.Errorf("Path.FilesystemPath() = %q, want %q", p.FilesystemPath(), tt.input)
			}
		})
	}
}

func TestPath_Accessors(t *testing.T) {
	t.Parallel()

	p, err := fspath.Parse("docs/../docs/readme.md")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if want := filepath.Clean("docs/readme.md"); p.Clean() != want {
		t.Errorf("Path.Clean() = %q, want %q", p.Clean(), want)
	}
	if p.Base() != "readme.md" {
		t.Errorf("Path.Base() = %q, want %q", p.Base(), "readme.md")
	}
	if p.IsAbs() {
		t.Error("relative path reported as absolute")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	_, err := fspath.ParseFor(platform.Linux, "a\x01b")
	if err == nil || !strings.Contains(err.Error(), "illegal characters in path") {
		t.Errorf("malformed error message = %v, want it to mention illegal characters", err)
	}

	_, err = fspath.ParseFor(platform.Windows, "a:b")
	if err == nil || !strings.Contains(err.Error(), "not supported on windows") {
		t.Errorf("unsupported error message = %v, want it to mention the platform", err)
	}
}

func TestParseFileNameFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goos    string
		input   string
		wantErr bool
	}{
		{"plain name", platform.Linux, "report.txt", false},
		{"backslash is a name char on linux", platform.Linux, `a\b`, false},
		{"slash", platform.Linux, "dir/report.txt", true},
		{"backslash on windows", platform.Windows, `dir\report.txt`, true},
		{"dot", platform.Linux, ".", true},
		{"dot dot", platform.Linux, "..", true},
		{"malformed", platform.Linux, "bad\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fspath.ParseFileNameFor(tt.goos, tt.input)
			if tt.wantErr {
				if !errors.Is(err, fspath.ErrMalformedPath) {
					t.Errorf("ParseFileNameFor(%q) error = %v, want ErrMalformedPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseFileNameFor(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
