// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"github.com/invowk/argbind/pkg/fspath"
	"github.com/invowk/argbind/pkg/platform"
)

// ExistingFilesOnly rejects tokens that name neither a file nor a directory
// on the host filesystem.
func (b *Builder) ExistingFilesOnly() *Builder {
	return b.ExistingFilesOnlyIn(fspath.OSProbe())
}

// ExistingFilesOnlyIn is ExistingFilesOnly against probe. Only the first
// missing path is reported.
func (b *Builder) ExistingFilesOnlyIn(probe fspath.Probe) *Builder {
	return b.AddValidator(func(sym *Symbol) string {
		for _, tok := range sym.Tokens {
			if !fspath.Exists(probe, tok) {
				return sym.Catalog().FileDoesNotExist(tok)
			}
		}
		return ""
	})
}

// ExistingDirectoriesOnlyIn rejects tokens that do not name a directory.
func (b *Builder) ExistingDirectoriesOnlyIn(probe fspath.Probe) *Builder {
	return b.AddValidator(func(sym *Symbol) string {
		for _, tok := range sym.Tokens {
			if !probe.DirExists(tok) {
				return sym.Catalog().FileDoesNotExist(tok)
			}
		}
		return ""
	})
}

// LegalFilePathsOnly rejects tokens that cannot be paths on the host
// platform.
func (b *Builder) LegalFilePathsOnly() *Builder {
	return b.LegalFilePathsOnlyFor(platform.Current())
}

// LegalFilePathsOnlyFor rejects tokens that cannot be paths on goos. The
// message of the first failing token is returned and the rest are skipped.
func (b *Builder) LegalFilePathsOnlyFor(goos string) *Builder {
	return b.AddValidator(func(sym *Symbol) string {
		for _, tok := range sym.Tokens {
			if _, err := fspath.ParseFor(goos, tok); err != nil {
				return err.Error()
			}
		}
		return ""
	})
}

// LegalFileNamesOnlyFor rejects tokens that are not single path elements
// on goos.
func (b *Builder) LegalFileNamesOnlyFor(goos string) *Builder {
	return b.AddValidator(func(sym *Symbol) string {
		for _, tok := range sym.Tokens {
			if _, err := fspath.ParseFileNameFor(goos, tok); err != nil {
				return err.Error()
			}
		}
		return ""
	})
}
