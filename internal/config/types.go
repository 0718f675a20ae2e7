// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/argbind/pkg/types"

	"golang.org/x/text/language"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultLanguage is the message language when none is configured.
	DefaultLanguage LanguageTag = "en"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLanguageTag is returned when a LanguageTag does not parse as BCP 47.
	ErrInvalidLanguageTag = errors.New("invalid language tag")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LanguageTag is a BCP 47 tag selecting the validation message catalog.
	LanguageTag string

	// InvalidLanguageTagError is returned when a LanguageTag is malformed.
	InvalidLanguageTagError struct {
		Value LanguageTag
		Cause error
	}

	// InvalidConfigError collects field-level validation errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Argfile is the definitions file used when --argfile is not given.
		// Empty means "discover argbind.{cue,toml,yaml,yml} in the working directory".
		Argfile types.FilesystemPath `json:"argfile" mapstructure:"argfile"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Messages configures validation message rendering
		Messages MessagesConfig `json:"messages" mapstructure:"messages"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// MessagesConfig configures the message catalog.
	MessagesConfig struct {
		Language LanguageTag `json:"language" mapstructure:"language"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Messages: MessagesConfig{
			Language: DefaultLanguage,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the LanguageTag.
func (l LanguageTag) String() string { return string(l) }

// Tag parses the LanguageTag, falling back to English when it is empty.
func (l LanguageTag) Tag() (language.Tag, error) {
	if l == "" {
		return language.English, nil
	}
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und, &InvalidLanguageTagError{Value: l, Cause: err}
	}
	return tag, nil
}

// IsValid returns whether the LanguageTag parses. The zero value is valid.
func (l LanguageTag) IsValid() (bool, []error) {
	if _, err := l.Tag(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidLanguageTagError) Error() string {
	return fmt.Sprintf("invalid language tag %q: %v", e.Value, e.Cause)
}

// Unwrap returns ErrInvalidLanguageTag for errors.Is() compatibility.
func (e *InvalidLanguageTagError) Unwrap() error { return ErrInvalidLanguageTag }

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.Argfile != "" {
		if err := c.Argfile.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Messages.Language.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
