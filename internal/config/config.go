// Package config loads the optional jdkctl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultRoot is the directory scanned for JDK installations when neither
// the --path flag nor the config file overrides it.
const DefaultRoot = `C:\Program Files\Java`

const (
	configDirName  = ".jdkctl"
	configFileName = "config.toml"
)

// Config holds the operator's persistent preferences.
type Config struct {
	// Root overrides the default installation root when non-empty.
	Root string `toml:"root"`
}

// Path returns the location of the config file under the user's home
// directory.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config file from its default location. A missing file is
// not an error and yields the zero config.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. A missing file yields the zero
// config; a malformed file is an error the caller may downgrade to a warning.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
