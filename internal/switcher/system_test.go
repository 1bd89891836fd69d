package switcher

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdkctl/internal/testutil"
)

func TestExecRunner_CapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub executables are shell scripts")
	}
	dir := t.TempDir()
	testutil.WriteStubWithOutput(t, dir, "java.exe", "openjdk version 17")

	out, err := ExecRunner{}.Run(filepath.Join(dir, "java.exe"), "-version")
	require.NoError(t, err)
	assert.Contains(t, out, "openjdk version 17")
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	_, err := ExecRunner{}.Run(filepath.Join(t.TempDir(), "java.exe"), "-version")
	assert.Error(t, err)
}

func TestOSEnv_Setenv(t *testing.T) {
	t.Setenv("JDKCTL_TEST_VAR", "before")
	require.NoError(t, OSEnv{}.Setenv("JDKCTL_TEST_VAR", "after"))
	assert.Equal(t, "after", os.Getenv("JDKCTL_TEST_VAR"))
}
