// Package switcher implements the active-toolchain switch procedure and the
// read-only status report, over an injected machine store.
package switcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"jdkctl/internal/messages"
	"jdkctl/internal/store"
	"jdkctl/internal/toolchain"
)

// Environment variable names mirrored into the current process after a
// switch, so the session observes the change without restarting.
const (
	EnvJavaHome   = "JAVA_HOME"
	EnvSearchPath = "PATH"
)

const (
	jarFileType = "jarfile"
	versionFlag = "-version"
)

// CandidateNotFoundError reports a switch request naming no discovered
// installation. Nothing is written when it is returned.
type CandidateNotFoundError struct {
	Name string
	Root string
}

func (e *CandidateNotFoundError) Error() string {
	return fmt.Sprintf(messages.UseUnknownCandidateFmt, e.Name, e.Root)
}

// Switcher runs the switch procedure and status report against an injected
// store, environment mirror, and process runner.
type Switcher struct {
	Store  store.Store
	Env    Env
	Runner Runner
	Out    io.Writer
	// Root is the directory scanned for JDK installations; it is also the
	// managed-root prefix used to recognize stale search-path entries.
	Root string
}

// New returns a Switcher bound to the real process environment and runner.
func New(st store.Store, root string, out io.Writer) *Switcher {
	return &Switcher{Store: st, Env: OSEnv{}, Runner: ExecRunner{}, Out: out, Root: root}
}

// Use activates the named installation. The steps run in order and are never
// rolled back: home variable, search path, association chain (skipped
// wholesale when javaw.exe is absent, with each sub-write failing
// independently), process-environment mirror, then informational
// verification. The selection check precedes every write.
func (s *Switcher) Use(name string) error {
	candidates, err := toolchain.Discover(s.Root)
	if err != nil {
		return err
	}
	candidate, ok := toolchain.Find(candidates, name)
	if !ok {
		return &CandidateNotFoundError{Name: name, Root: s.Root}
	}

	if err := s.Store.Set(store.KeyJavaHome, candidate.InstallRoot); err != nil {
		return fmt.Errorf(messages.UseHomeWriteFailedFmt, EnvJavaHome, err)
	}

	// The home variable stays committed even if the search-path write fails.
	current, err := s.Store.Get(store.KeySearchPath)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf(messages.UsePathReadFailedFmt, err)
	}
	rebuilt := toolchain.RebuildSearchPath(current, candidate.BinDir(), s.Root)
	if err := s.Store.Set(store.KeySearchPath, rebuilt); err != nil {
		return fmt.Errorf(messages.UsePathWriteFailedFmt, err)
	}

	s.updateAssociation(candidate)

	if err := s.Env.Setenv(EnvJavaHome, candidate.InstallRoot); err != nil {
		return fmt.Errorf(messages.MirrorFailedFmt, EnvJavaHome, err)
	}
	if err := s.Env.Setenv(EnvSearchPath, rebuilt); err != nil {
		return fmt.Errorf(messages.MirrorFailedFmt, EnvSearchPath, err)
	}

	_, _ = fmt.Fprintf(s.Out, messages.UseActivatedFmt, candidate.Name, candidate.InstallRoot)

	// Verification only; the switch is already committed.
	s.reportVersion(candidate.ConsolePath())
	s.reportVersion(candidate.NonConsolePath())
	return nil
}

// updateAssociation rewrites the .jar association chain to reference the
// candidate's windowless launcher. When the launcher is absent the whole
// chain is left untouched. The three writes are independent; a failure on
// one is reported and the siblings are still attempted.
func (s *Switcher) updateAssociation(candidate toolchain.Candidate) {
	javaw := candidate.NonConsolePath()
	if _, err := os.Stat(javaw); err != nil {
		s.warnf(messages.AssocSkippedFmt, javaw)
		return
	}
	writes := []struct {
		label string
		key   store.Key
		value string
	}{
		{messages.AssocExtLabel, store.KeyJarExtType, jarFileType},
		{messages.AssocCommandLabel, store.KeyJarOpenCommand, fmt.Sprintf(`"%s" -jar "%%1"`, javaw)},
		{messages.AssocIconLabel, store.KeyJarDefaultIcon, javaw + ",0"},
	}
	for _, w := range writes {
		if err := s.Store.Set(w.key, w.value); err != nil {
			s.warnf(messages.AssocWriteFailedFmt, w.label, err)
		}
	}
}

// Status reports the persisted home variable, the active launcher's version,
// and the association chain. It never writes, and each sub-step degrades to
// an inline report instead of failing the command.
func (s *Switcher) Status() error {
	home, err := s.Store.Get(store.KeyJavaHome)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	home = strings.TrimSpace(home)
	if home == "" {
		_, _ = fmt.Fprint(s.Out, messages.CurrentUnset)
	} else {
		_, _ = fmt.Fprintf(s.Out, messages.CurrentHomeFmt, home)
		s.reportVersion(filepath.Join(home, "bin", toolchain.ConsoleExecutable))
	}
	s.reportAssociation()
	return nil
}

// reportAssociation prints the association chain, or a single "not found"
// line when any of its three links is missing.
func (s *Switcher) reportAssociation() {
	ext, errExt := s.Store.Get(store.KeyJarExtType)
	open, errOpen := s.Store.Get(store.KeyJarOpenCommand)
	icon, errIcon := s.Store.Get(store.KeyJarDefaultIcon)
	if errExt != nil || errOpen != nil || errIcon != nil || strings.TrimSpace(ext) == "" {
		_, _ = fmt.Fprint(s.Out, messages.CurrentNoAssociation)
		return
	}
	_, _ = fmt.Fprintf(s.Out, messages.CurrentAssociationFmt, ext, open, icon)
}

// reportVersion runs exe with -version and prints its output, downgrading
// execution failures to a warning.
func (s *Switcher) reportVersion(exe string) {
	out, err := s.Runner.Run(exe, versionFlag)
	if err != nil {
		s.warnf(messages.VerifyFailedFmt, exe, err)
		return
	}
	_, _ = fmt.Fprintf(s.Out, messages.VerifyHeaderFmt, exe)
	_, _ = fmt.Fprint(s.Out, out)
	if out != "" && !strings.HasSuffix(out, "\n") {
		_, _ = fmt.Fprintln(s.Out)
	}
}

func (s *Switcher) warnf(format string, a ...any) {
	_, _ = fmt.Fprint(s.Out, color.YellowString(format, a...))
}
