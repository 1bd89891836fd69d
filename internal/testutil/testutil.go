// Package testutil provides helpers for building fake JDK installations and
// executable stubs in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithOutput(t, dir, name, "")
}

// WriteStubWithOutput writes an executable shell stub that prints output to
// stderr and exits successfully, mimicking `java -version` banners.
func WriteStubWithOutput(t *testing.T, dir string, name string, output string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := fmt.Sprintf("#!/bin/sh\nif [ -n \"%s\" ]; then echo \"%s\" >&2; fi\nexit 0\n", output, output)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteJDK creates a fake installation root/<name>/bin containing the given
// executable names as runnable stubs, and returns the installation root.
func WriteJDK(t *testing.T, root string, name string, executables ...string) string {
	t.Helper()
	installRoot := filepath.Join(root, name)
	binDir := filepath.Join(installRoot, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	for _, exe := range executables {
		WriteStub(t, binDir, exe)
	}
	return installRoot
}
