//go:build !windows

// Package privilege checks whether the process holds the elevation required
// to write machine-scoped configuration.
package privilege

import "os"

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}
