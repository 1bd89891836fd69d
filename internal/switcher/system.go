package switcher

import (
	"os"
	"os/exec"
)

// Env mirrors values into the current process's environment.
type Env interface {
	Setenv(key, value string) error
}

// OSEnv implements Env using the real process environment.
type OSEnv struct{}

// Setenv delegates to os.Setenv.
func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Runner executes a collaborator executable and returns its combined output.
type Runner interface {
	Run(exe string, args ...string) (string, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Run executes exe with args and returns combined stdout and stderr.
func (ExecRunner) Run(exe string, args ...string) (string, error) {
	out, err := exec.Command(exe, args...).CombinedOutput()
	return string(out), err
}
