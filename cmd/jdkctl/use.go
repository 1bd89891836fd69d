package main

import (
	"github.com/spf13/cobra"

	"jdkctl/internal/messages"
)

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UseUse,
		Short: messages.UseShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, err := newSwitcher(cmd)
			if err != nil {
				return err
			}
			return sw.Use(args[0])
		},
	}
}
