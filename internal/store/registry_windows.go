//go:build windows

package store

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// envKeyPath is the machine-scoped environment key read by new processes.
const envKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// location binds a Key to a registry key and value name. An empty name means
// the key's default value.
type location struct {
	root   registry.Key
	path   string
	name   string
	expand bool
}

var locations = map[Key]location{
	KeyJavaHome:       {registry.LOCAL_MACHINE, envKeyPath, "JAVA_HOME", false},
	KeySearchPath:     {registry.LOCAL_MACHINE, envKeyPath, "Path", true},
	KeyJarExtType:     {registry.CLASSES_ROOT, `.jar`, "", false},
	KeyJarOpenCommand: {registry.CLASSES_ROOT, `jarfile\shell\open\command`, "", false},
	KeyJarDefaultIcon: {registry.CLASSES_ROOT, `jarfile\DefaultIcon`, "", false},
}

// RegistryStore implements Store against the Windows registry.
type RegistryStore struct{}

// NewSystemStore returns the registry-backed store.
func NewSystemStore() (Store, error) {
	return RegistryStore{}, nil
}

// Get reads the registry value bound to key.
func (RegistryStore) Get(key Key) (string, error) {
	loc := locations[key]
	k, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	defer k.Close()
	value, _, err := k.GetStringValue(loc.name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set writes the registry value bound to key, creating the key when absent.
func (RegistryStore) Set(key Key, value string) error {
	loc := locations[key]
	k, _, err := registry.CreateKey(loc.root, loc.path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	if loc.expand {
		return k.SetExpandStringValue(loc.name, value)
	}
	return k.SetStringValue(loc.name, value)
}
