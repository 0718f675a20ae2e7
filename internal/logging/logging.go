// SPDX-License-Identifier: MPL-2.0

// Package logging installs the charmbracelet/log handler behind log/slog for
// the argbind CLI. Library packages only ever call slog.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "argbind"

// New returns a slog.Logger writing styled records to w. Debug records are
// emitted only when verbose is set.
func New(verbose bool, w io.Writer) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}

// Setup builds a logger with New and makes it the slog default.
func Setup(verbose bool, w io.Writer) *slog.Logger {
	logger := New(verbose, w)
	slog.SetDefault(logger)
	return logger
}
