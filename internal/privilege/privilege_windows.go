//go:build windows

// Package privilege checks whether the process holds the elevation required
// to write machine-scoped configuration.
package privilege

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token carries administrator
// elevation. Checked once at entry; machine-store writes fail without it.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
