package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the gallery images in order with their alt text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := appCtx.Gallery.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range ss {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Path, s.Alt)
			}
			return nil
		},
	}
}
