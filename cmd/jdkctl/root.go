package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jdkctl/internal/config"
	"jdkctl/internal/messages"
	"jdkctl/internal/privilege"
	"jdkctl/internal/store"
	"jdkctl/internal/switcher"
)

const flagPath = "path"

// Test seams for machine-state collaborators.
var (
	isElevatedFunc     = privilege.IsElevated
	newSystemStoreFunc = store.NewSystemStore
	loadConfigFunc     = config.Load
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Elevation is a precondition for the whole run, checked once here
		// and never re-validated mid-procedure.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isElevatedFunc() {
				return errors.New(messages.PrivilegeRequired)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
	cmd.PersistentFlags().String(flagPath, "", messages.RootPathFlag)
	cmd.AddCommand(newListCmd(), newUseCmd(), newCurrentCmd())
	return cmd
}

// resolveRoot returns the installation root: --path flag, then the config
// file, then the built-in default. A broken config file is only a warning.
func resolveRoot(cmd *cobra.Command) string {
	if flagValue, err := cmd.Flags().GetString(flagPath); err == nil && strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	cfg, err := loadConfigFunc()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.ConfigWarnFmt, err)
	} else if strings.TrimSpace(cfg.Root) != "" {
		return cfg.Root
	}
	return config.DefaultRoot
}

// newSwitcher builds a switcher bound to the machine store and the resolved
// installation root.
func newSwitcher(cmd *cobra.Command) (*switcher.Switcher, error) {
	st, err := newSystemStoreFunc()
	if err != nil {
		return nil, err
	}
	return switcher.New(st, resolveRoot(cmd), cmd.OutOrStdout()), nil
}
