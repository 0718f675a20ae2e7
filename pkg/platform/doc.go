// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It holds the operating-system rules that path validation needs to apply
// regardless of the host it runs on, such as Windows reserved device names and
// the characters Windows forbids in path components.
package platform
