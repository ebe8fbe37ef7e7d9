package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search the documentation interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// The UI owns the terminal; only warnings go to stderr.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		w, err := mountWidget(ctx, cmd, cfg, logger)
		if err != nil {
			return err
		}
		defer w.Close()

		href, err := tui.Run(w, cfg.SiteName)
		if err != nil {
			return err
		}
		if href != "" {
			fmt.Println(href)
		}
		return nil
	},
}

func init() {
	addSourceFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}
