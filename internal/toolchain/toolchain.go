// Package toolchain discovers JDK installations under a root directory and
// rewrites search-path lists to point at the active one.
package toolchain

import (
	"os"
	"path/filepath"
)

// Executable names inside a candidate's bin directory. java.exe doubles as
// the discovery marker; javaw.exe is the windowless launcher the .jar
// association points at.
const (
	ConsoleExecutable    = "java.exe"
	NonConsoleExecutable = "javaw.exe"
	binDirName           = "bin"
)

// Candidate is one discovered JDK installation.
type Candidate struct {
	// Name is the installation directory's basename, unique within a scan.
	Name string
	// InstallRoot is the absolute path of the installation directory.
	InstallRoot string
}

// BinDir returns the candidate's executable directory.
func (c Candidate) BinDir() string {
	return filepath.Join(c.InstallRoot, binDirName)
}

// ConsolePath returns the path of the candidate's console launcher.
func (c Candidate) ConsolePath() string {
	return filepath.Join(c.BinDir(), ConsoleExecutable)
}

// NonConsolePath returns the path of the candidate's windowless launcher.
func (c Candidate) NonConsolePath() string {
	return filepath.Join(c.BinDir(), NonConsoleExecutable)
}

// Discover returns the immediate subdirectories of root that contain the
// executable marker bin/java.exe, in directory enumeration order. A missing
// root yields an empty result, not an error: callers treat "empty" as
// "nothing configured here".
func Discover(root string) ([]Candidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		installRoot := filepath.Join(root, entry.Name())
		marker := filepath.Join(installRoot, binDirName, ConsoleExecutable)
		if info, err := os.Stat(marker); err != nil || info.IsDir() {
			continue
		}
		candidates = append(candidates, Candidate{Name: entry.Name(), InstallRoot: installRoot})
	}
	return candidates, nil
}

// Find returns the candidate with the given name, if present.
func Find(candidates []Candidate, name string) (Candidate, bool) {
	for _, c := range candidates {
		if c.Name == name {
			return c, true
		}
	}
	return Candidate{}, false
}
