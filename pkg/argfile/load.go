// SPDX-License-Identifier: MPL-2.0

package argfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/invowk/argbind/pkg/cueutil"
)

// Supported document formats.
const (
	FormatCUE  Format = "cue"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	//go:embed argfile_schema.cue
	argfileSchema []byte

	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported definitions file format")
)

// Format identifies a definitions file encoding.
type Format string

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (use .cue, .toml, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the definitions file at path on the host
// filesystem.
func Load(path string) (*File, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads and validates the definitions file at path in fsys.
func LoadFS(fsys afero.Fs, path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file at %s: %w", path, err)
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format and validates the result.
// Validation problems are returned as ValidationErrors.
func Parse(data []byte, format Format, path string) (*File, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	var (
		f   *File
		err error
	)
	switch format {
	case FormatCUE:
		f, err = decodeCUE(data, path)
	case FormatTOML:
		f, err = decodeTOML(data, path)
	case FormatYAML:
		f, err = decodeYAML(data, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	f.Path = path
	if errs := f.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}

func decodeCUE(data []byte, path string) (*File, error) {
	res, err := cueutil.ParseAndDecode[File](argfileSchema, data, "#ArgFile", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

func decodeTOML(data []byte, path string) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func decodeYAML(data []byte, path string) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}
