package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd renders the gallery in memory and fails when the page differs.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the gallery block matches the images on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Gallery.Check(cmd.Context())
			if err != nil {
				return err
			}
			if res.Empty {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no images found in %s. Nothing to check.\n",
					appCtx.Config.GalleryDir)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gallery up to date with %s.\n", slides(res.Slides))
			return nil
		},
	}
}
