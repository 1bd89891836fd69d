package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jdkctl/internal/messages"
	"jdkctl/internal/terminal"
	"jdkctl/internal/toolchain"
)

var isInteractiveFunc = terminal.IsInteractive

// runMenu prints a numbered candidate menu, reads an index from stdin, and
// switches to the selected installation. Any input outside 0..count-1 is an
// invalid selection.
func runMenu(cmd *cobra.Command) error {
	if !isInteractiveFunc() {
		return errors.New(messages.MenuNotATerminal)
	}

	root := resolveRoot(cmd)
	candidates, err := toolchain.Discover(root)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf(messages.MenuNoCandidatesFmt, root)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, messages.MenuHeaderFmt, root)
	for i, candidate := range candidates {
		_, _ = fmt.Fprintf(out, messages.MenuEntryFmt, i, candidate.Name)
	}
	_, _ = fmt.Fprintf(out, messages.MenuPromptFmt, len(candidates)-1)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf(messages.MenuReadFailedFmt, err)
	}
	input := strings.TrimSpace(line)
	index, convErr := strconv.Atoi(input)
	if convErr != nil || index < 0 || index >= len(candidates) {
		return fmt.Errorf(messages.MenuInvalidFmt, input, len(candidates)-1)
	}

	sw, err := newSwitcher(cmd)
	if err != nil {
		return err
	}
	return sw.Use(candidates[index].Name)
}
