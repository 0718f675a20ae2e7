// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"log/slog"

	"github.com/spf13/afero"
)

type (
	// Probe answers existence questions about paths. Validators depend on it
	// instead of the os package so tests can substitute an in-memory filesystem.
	Probe interface {
		// FileExists reports whether path names an existing non-directory.
		FileExists(path string) bool
		// DirExists reports whether path names an existing directory.
		DirExists(path string) bool
	}

	aferoProbe struct {
		fs afero.Fs
	}
)

// NewProbe returns a Probe backed by fs.
func NewProbe(fs afero.Fs) Probe {
	return &aferoProbe{fs: fs}
}

// OSProbe returns a Probe backed by the real filesystem.
func OSProbe() Probe {
	return NewProbe(afero.NewOsFs())
}

// Exists reports whether path names an existing file or directory.
func Exists(p Probe, path string) bool {
	return p.FileExists(path) || p.DirExists(path)
}

func (p *aferoProbe) FileExists(path string) bool {
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (p *aferoProbe) DirExists(path string) bool {
	ok, err := afero.DirExists(p.fs, path)
	if err != nil {
		slog.Debug("directory probe failed", "path", path, "error", err)
		return false
	}
	return ok
}
