package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gallerysync/internal/app"
)

var (
	cfg    app.Config
	appCtx *app.Wire
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		if appCtx != nil {
			appCtx.Log.Error("gallerysync failed", "error", err)
		}
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	cfg = app.DefaultConfig()
	appCtx = nil

	root := &cobra.Command{
		Use:           "gallerysync",
		Short:         "Regenerate the wedding site gallery markup from assets/gallery",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		RunE: runSync,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Root, "root", cfg.Root, "site root directory")
	pf.StringVar(&cfg.IndexPath, "index", cfg.IndexPath, "page to update (default <root>/index.html)")
	pf.StringVar(&cfg.GalleryDir, "gallery", cfg.GalleryDir, "image directory (default <root>/assets/gallery)")
	pf.StringVar(&cfg.Indent, "indent", cfg.Indent, "indentation used when the start marker has none")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	root.AddCommand(syncCmd(), checkCmd(), listCmd())
	return root
}
