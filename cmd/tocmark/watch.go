package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory for pdf+json pairs and resolve them",
	Long: `Watch a directory for incoming documents and resolve each completed
pair automatically. A document is a PDF together with a structured page
dump sharing its base name (book.pdf + book.json). Files already present
when the watcher starts are processed too.

Every resolved pair is saved as a run under the home runs directory.
Without an argument the home inbox directory is watched.

Examples:
  tocmark watch
  tocmark watch ./incoming`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, svcs, err := setupServices(cmd.Context())
		if err != nil {
			return err
		}

		// Long-running mode, so pick up config edits without a restart.
		svcs.Config.WatchConfig()

		dir := svcs.Home.InboxDir()
		if len(args) == 1 {
			dir = args[0]
		}

		cfg := svcs.Config.Get()
		w := watcher.New(watcher.Config{
			Dir:    dir,
			Logger: svcs.Logger,
			Handler: func(ctx context.Context, pdfPath, structurePath string) error {
				outcome, err := runResolve(ctx, pdfPath, structurePath, true)
				if err != nil {
					return err
				}
				svcs.Logger.Info("pair resolved",
					"run_id", outcome.Record.ID,
					"pdf", pdfPath,
					"status_counts", outcome.Record.StatusCounts,
				)
				return nil
			},
			StabilizeDelay:    time.Duration(cfg.Watch.StabilizeDelayMS) * time.Millisecond,
			StabilizeAttempts: cfg.Watch.StabilizeAttempts,
		})

		svcs.Logger.Info("watching", "dir", dir)
		return w.Run(ctx)
	},
}
