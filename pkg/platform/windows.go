// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// WindowsReservedNames are filenames that cannot be used on Windows.
// These names are reserved by the operating system regardless of file extension.
var WindowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// windowsReservedChars are the printable characters Windows rejects in any
// path component. The colon is handled separately by IsDrivePrefix.
const windowsReservedChars = `<>"|?*`

// IsWindowsReservedName checks if a filename is a Windows reserved name.
// It handles filenames with extensions by checking just the base name portion.
func IsWindowsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.LastIndex(upper, "."); idx != -1 {
		upper = upper[:idx]
	}
	return WindowsReservedNames[upper]
}

// ContainsWindowsReservedChar returns the first character in s that Windows
// forbids in paths, and whether one was found.
func ContainsWindowsReservedChar(s string) (rune, bool) {
	if idx := strings.IndexAny(s, windowsReservedChars); idx != -1 {
		return rune(s[idx]), true
	}
	return 0, false
}

// IsDrivePrefix reports whether s starts with a drive designator such as "C:".
func IsDrivePrefix(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDeviceNamespace reports whether s uses the Win32 device or verbatim
// namespace prefixes (\\.\ and \\?\), which bypass normal path parsing.
func IsDeviceNamespace(s string) bool {
	return strings.HasPrefix(s, `\\.\`) || strings.HasPrefix(s, `\\?\`) ||
		strings.HasPrefix(s, `//./`) || strings.HasPrefix(s, `//?/`)
}
