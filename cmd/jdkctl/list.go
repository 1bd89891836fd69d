package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdkctl/internal/messages"
	"jdkctl/internal/toolchain"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := resolveRoot(cmd)
			candidates, err := toolchain.Discover(root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				_, _ = fmt.Fprintf(out, messages.ListEmptyFmt, root)
				return nil
			}
			_, _ = fmt.Fprintf(out, messages.ListHeaderFmt, root)
			for _, candidate := range candidates {
				_, _ = fmt.Fprintf(out, messages.ListEntryFmt, candidate.Name)
			}
			return nil
		},
	}
}
