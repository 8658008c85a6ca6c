package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rewrite the gallery block from the images on disk",
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	res, err := appCtx.Gallery.Sync(cmd.Context())
	if err != nil {
		return err
	}
	switch {
	case res.Empty:
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no images found in %s. Existing gallery markup left untouched.\n",
			appCtx.Config.GalleryDir)
	case !res.Written:
		fmt.Fprintf(cmd.OutOrStdout(), "Gallery already up to date with %s.\n", slides(res.Slides))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Updated gallery with %s.\n", slides(res.Slides))
	}
	return nil
}

func slides(n int) string {
	if n == 1 {
		return "1 slide"
	}
	return fmt.Sprintf("%d slides", n)
}
