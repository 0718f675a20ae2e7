// SPDX-License-Identifier: MPL-2.0

package platform

import goruntime "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns the operating system the binary was built for.
func Current() string { return goruntime.GOOS }

// IsWindows reports whether goos names the Windows platform.
func IsWindows(goos string) bool { return goos == Windows }
