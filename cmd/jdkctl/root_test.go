package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdkctl/internal/config"
	"jdkctl/internal/messages"
	"jdkctl/internal/store"
	"jdkctl/internal/switcher"
	"jdkctl/internal/testutil"
	"jdkctl/internal/toolchain"
)

// setSeams routes the CLI at an in-memory store and stubs out the
// elevation, config, and terminal checks. Restored via t.Cleanup.
func setSeams(t *testing.T, st store.Store) {
	t.Helper()
	prevElevated := isElevatedFunc
	prevStore := newSystemStoreFunc
	prevConfig := loadConfigFunc
	prevInteractive := isInteractiveFunc
	isElevatedFunc = func() bool { return true }
	newSystemStoreFunc = func() (store.Store, error) { return st, nil }
	loadConfigFunc = func() (config.Config, error) { return config.Config{}, nil }
	isInteractiveFunc = func() bool { return true }
	t.Cleanup(func() {
		isElevatedFunc = prevElevated
		newSystemStoreFunc = prevStore
		loadConfigFunc = prevConfig
		isInteractiveFunc = prevInteractive
	})
}

// guardProcessEnv restores JAVA_HOME and PATH after tests that run a real
// switch, which mirrors values into the process environment.
func guardProcessEnv(t *testing.T) {
	t.Helper()
	t.Setenv(switcher.EnvJavaHome, os.Getenv(switcher.EnvJavaHome))
	t.Setenv(switcher.EnvSearchPath, os.Getenv(switcher.EnvSearchPath))
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_PrintsCandidates(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()
	testutil.WriteJDK(t, root, "jdk-11", toolchain.ConsoleExecutable)
	testutil.WriteJDK(t, root, "jdk-17", toolchain.ConsoleExecutable, toolchain.NonConsoleExecutable)

	stdout, _, err := runCLI(t, "", "list", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "jdk-11")
	assert.Contains(t, stdout, "jdk-17")
}

func TestList_EmptyRoot(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()

	stdout, _, err := runCLI(t, "", "list", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No JDK installations found")
}

func TestList_MissingRoot(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := filepath.Join(t.TempDir(), "nope")

	stdout, _, err := runCLI(t, "", "list", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No JDK installations found")
}

func TestPrivilegeRequired(t *testing.T) {
	setSeams(t, store.NewMemStore())
	isElevatedFunc = func() bool { return false }

	_, _, err := runCLI(t, "", "list")
	require.Error(t, err)
	assert.Equal(t, messages.PrivilegeRequired, err.Error())
}

func TestUseCommand_Switches(t *testing.T) {
	guardProcessEnv(t)
	st := store.NewMemStore()
	setSeams(t, st)
	root := t.TempDir()
	jdk17 := testutil.WriteJDK(t, root, "jdk-17", toolchain.ConsoleExecutable, toolchain.NonConsoleExecutable)

	stdout, _, err := runCLI(t, "", "use", "jdk-17", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Activated jdk-17")

	home, err := st.Get(store.KeyJavaHome)
	require.NoError(t, err)
	assert.Equal(t, jdk17, home)

	searchPath, err := st.Get(store.KeySearchPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(jdk17, "bin"), strings.Split(searchPath, toolchain.ListSeparator)[0])
}

func TestUseCommand_UnknownName(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()
	testutil.WriteJDK(t, root, "jdk-11", toolchain.ConsoleExecutable)

	_, _, err := runCLI(t, "", "use", "jdk-21", "--path", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jdkctl list")
}

func TestCurrent_Unset(t *testing.T) {
	setSeams(t, store.NewMemStore())

	stdout, _, err := runCLI(t, "", "current")
	require.NoError(t, err)
	assert.Contains(t, stdout, "JAVA_HOME is not set")
}

func TestMenu_SelectsByIndex(t *testing.T) {
	guardProcessEnv(t)
	st := store.NewMemStore()
	setSeams(t, st)
	root := t.TempDir()
	testutil.WriteJDK(t, root, "jdk-11", toolchain.ConsoleExecutable)
	jdk17 := testutil.WriteJDK(t, root, "jdk-17", toolchain.ConsoleExecutable, toolchain.NonConsoleExecutable)

	stdout, _, err := runCLI(t, "1\n", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[0] jdk-11")
	assert.Contains(t, stdout, "[1] jdk-17")

	home, err := st.Get(store.KeyJavaHome)
	require.NoError(t, err)
	assert.Equal(t, jdk17, home)
}

func TestMenu_RejectsOutOfRangeIndex(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()
	testutil.WriteJDK(t, root, "jdk-11", toolchain.ConsoleExecutable)

	_, _, err := runCLI(t, "7\n", "--path", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
}

func TestMenu_RejectsNonNumericInput(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()
	testutil.WriteJDK(t, root, "jdk-11", toolchain.ConsoleExecutable)

	_, _, err := runCLI(t, "latest\n", "--path", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
}

func TestMenu_NoCandidates(t *testing.T) {
	setSeams(t, store.NewMemStore())
	root := t.TempDir()

	_, _, err := runCLI(t, "", "--path", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to select")
}

func TestMenu_RequiresTerminal(t *testing.T) {
	setSeams(t, store.NewMemStore())
	isInteractiveFunc = func() bool { return false }

	_, _, err := runCLI(t, "", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestResolveRoot_ConfigFallback(t *testing.T) {
	setSeams(t, store.NewMemStore())
	configured := t.TempDir()
	testutil.WriteJDK(t, configured, "jdk-21", toolchain.ConsoleExecutable)
	loadConfigFunc = func() (config.Config, error) {
		return config.Config{Root: configured}, nil
	}

	stdout, _, err := runCLI(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jdk-21")
}

func TestResolveRoot_FlagBeatsConfig(t *testing.T) {
	setSeams(t, store.NewMemStore())
	flagRoot := t.TempDir()
	testutil.WriteJDK(t, flagRoot, "jdk-17", toolchain.ConsoleExecutable)
	loadConfigFunc = func() (config.Config, error) {
		return config.Config{Root: t.TempDir()}, nil
	}

	stdout, _, err := runCLI(t, "", "list", "--path", flagRoot)
	require.NoError(t, err)
	assert.Contains(t, stdout, "jdk-17")
}

func TestResolveRoot_ConfigErrorWarns(t *testing.T) {
	setSeams(t, store.NewMemStore())
	loadConfigFunc = func() (config.Config, error) {
		return config.Config{}, errors.New("bad toml")
	}

	_, stderr, err := runCLI(t, "", "list", "--path", "")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ignoring config file")
}

func TestRunMain_ExitCodeOnError(t *testing.T) {
	prev := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}
	t.Cleanup(func() { executeFunc = prev })

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"jdkctl"}, io.Discard, &stderr, func(c int) { code = c })

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "boom")
}

func TestRunMain_SuccessDoesNotExit(t *testing.T) {
	prev := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return nil
	}
	t.Cleanup(func() { executeFunc = prev })

	exited := false
	runMain([]string{"jdkctl"}, io.Discard, io.Discard, func(int) { exited = true })
	assert.False(t, exited)
}

func TestVersionString(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = prevVersion, prevCommit, prevDate })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "1.2.3", versionString())

	Commit = "abc1234"
	BuildDate = "2026-08-24"
	assert.Equal(t, "1.2.3 (commit abc1234, built 2026-08-24)", versionString())
}
