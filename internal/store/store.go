// Package store abstracts the machine-scoped configuration store that holds
// the active JDK's home variable, the search path, and the .jar association.
package store

import "errors"

// Key identifies one persisted configuration value.
type Key string

// Keys managed by jdkctl. On Windows these map to registry values; see
// registry_windows.go for the bindings.
const (
	// KeyJavaHome holds the install root of the active JDK.
	KeyJavaHome Key = "JavaHome"
	// KeySearchPath holds the machine search path as one delimited string.
	KeySearchPath Key = "SearchPath"
	// KeyJarExtType maps the .jar extension to its file type.
	KeyJarExtType Key = "JarExtType"
	// KeyJarOpenCommand holds the file type's open command line.
	KeyJarOpenCommand Key = "JarOpenCommand"
	// KeyJarDefaultIcon holds the file type's default icon reference.
	KeyJarDefaultIcon Key = "JarDefaultIcon"
)

// ErrNotFound is returned by Get when the key has no persisted value.
var ErrNotFound = errors.New("store: key not found")

// ErrUnsupportedPlatform is returned by NewSystemStore on platforms without a
// machine-scoped configuration store binding.
var ErrUnsupportedPlatform = errors.New("store: the machine configuration store is only available on Windows")

// Store reads and writes named values in machine-scoped configuration
// storage. Writes are last-writer-wins; there is no locking across processes.
type Store interface {
	// Get returns the value for key, or ErrNotFound when it is absent.
	Get(key Key) (string, error)
	// Set writes value under key, creating it when absent.
	Set(key Key, value string) error
}
