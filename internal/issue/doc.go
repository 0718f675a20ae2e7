// SPDX-License-Identifier: MPL-2.0

// Package issue turns CLI failures into actionable messages: an
// ActionableError carries the failed operation, the resource involved and
// suggestions, and the issue catalog holds Markdown guidance rendered with
// glamour for the common failure classes.
package issue
