// SPDX-License-Identifier: MPL-2.0

// Package fspath turns raw command-line tokens into checked path values and
// answers existence questions about them through an injectable Probe.
//
// Parse never panics: every way a token can fail to be a path is reported as
// either a *MalformedPathError or an *UnsupportedPathFormError.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/invowk/argbind/pkg/platform"
	"github.com/invowk/argbind/pkg/types"
)

// MaxPathLength is the longest token accepted as a path.
const MaxPathLength = 4096

// Path is a token that passed path construction. The zero value is not a
// valid Path; obtain one from Parse or ParseFor.
type Path struct {
	raw   string
	clean string
}

// Parse constructs a Path from s using the rules of the host platform.
func Parse(s string) (Path, error) {
	return ParseFor(platform.Current(), s)
}

// ParseFor constructs a Path from s using the rules of goos. Rules that only
// Windows enforces (reserved device names, drive-letter colons, reserved
// characters) apply only when goos is "windows".
func ParseFor(goos, s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return Path{}, &MalformedPathError{Value: s, Reason: "path is empty"}
	}
	if len(s) > MaxPathLength {
		return Path{}, &MalformedPathError{Value: s, Reason: fmt.Sprintf("path too long (%d chars, max %d)", len(s), MaxPathLength)}
	}
	if !utf8.ValidString(s) {
		return Path{}, &MalformedPathError{Value: s, Reason: "path is not valid UTF-8"}
	}
	for i, r := range s {
		if r == 0 {
			return Path{}, &MalformedPathError{Value: s, Reason: fmt.Sprintf("null byte at offset %d", i)}
		}
		if r < 0x20 || r == 0x7f {
			return Path{}, &MalformedPathError{Value: s, Reason: fmt.Sprintf("control character %U at offset %d", r, i)}
		}
	}

	if platform.IsWindows(goos) {
		if err := checkWindowsForm(s); err != nil {
			return Path{}, err
		}
	}

	return Path{raw: s, clean: filepath.Clean(s)}, nil
}

func checkWindowsForm(s string) error {
	if platform.IsDeviceNamespace(s) {
		return &UnsupportedPathFormError{Value: s, OS: platform.Windows, Reason: "device namespace prefixes are not supported"}
	}
	if c, found := platform.ContainsWindowsReservedChar(s); found {
		return &MalformedPathError{Value: s, Reason: fmt.Sprintf("illegal character %q", c)}
	}
	rest := s
	if platform.IsDrivePrefix(s) {
		rest = s[2:]
	}
	if strings.ContainsRune(rest, ':') {
		return &UnsupportedPathFormError{Value: s, OS: platform.Windows, Reason: "a colon is only allowed after a drive letter"}
	}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\\' }) {
		if platform.IsWindowsReservedName(part) {
			return &UnsupportedPathFormError{Value: s, OS: platform.Windows, Reason: fmt.Sprintf("%q is a reserved device name", part)}
		}
	}
	return nil
}

// String returns the token exactly as it was supplied.
func (p Path) String() string { return p.raw }

// Clean returns the lexically cleaned form of the path (filepath.Clean).
func (p Path) Clean() string { return p.clean }

// IsAbs reports whether the path is absolute on the host platform.
func (p Path) IsAbs() bool { return filepath.IsAbs(p.clean) }

// Base returns the last element of the path.
func (p Path) Base() string { return filepath.Base(p.clean) }

// FilesystemPath returns the path as the shared value type.
func (p Path) FilesystemPath() types.FilesystemPath {
	return types.FilesystemPath(p.raw)
}

// ParseFileNameFor constructs a Path from s and additionally requires it to
// be a single path element on goos (no separators, not "." or "..").
func ParseFileNameFor(goos, s string) (Path, error) {
	p, err := ParseFor(goos, s)
	if err != nil {
		return Path{}, err
	}
	if s == "." || s == ".." {
		return Path{}, &MalformedPathError{Value: s, Reason: "not a file name"}
	}
	seps := "/"
	if platform.IsWindows(goos) {
		seps = `/\`
	}
	if strings.ContainsAny(s, seps) {
		return Path{}, &MalformedPathError{Value: s, Reason: "file name must not contain a path separator"}
	}
	return p, nil
}
