package main

import (
	"github.com/spf13/cobra"

	"jdkctl/internal/messages"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, err := newSwitcher(cmd)
			if err != nil {
				return err
			}
			return sw.Status()
		},
	}
}
