// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fail-fast helpers for tests that touch process
// state: environment variables, the working directory, the home directory,
// and small fixture files on disk.
package testutil
