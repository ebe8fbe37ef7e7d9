package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/config"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/widget"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsearch init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the stderr logger used by all commands.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// addSourceFlags registers the flags that pick where the index is read from.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("origin", "", "fetch the index from a published site (e.g. https://user.github.io); defaults to config origin")
	cmd.Flags().String("dir", "", "read the index from a built site directory (defaults to output_dir)")
	cmd.Flags().String("page", "/", "path of the page the search box is on, e.g. /Study-MAT/guide/intro.html")
}

// newFetcher returns an HTTP fetcher when an origin is configured, otherwise
// a fetcher over the built site directory.
func newFetcher(cmd *cobra.Command, cfg *config.Config) (loader.Fetcher, error) {
	origin, _ := cmd.Flags().GetString("origin")
	if origin == "" {
		origin = cfg.Origin
	}
	dir, _ := cmd.Flags().GetString("dir")

	if origin != "" && dir == "" {
		timeout, err := cfg.FetchTimeout()
		if err != nil {
			return nil, err
		}
		f, err := loader.NewHTTPFetcher(&http.Client{Timeout: timeout}, origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		return f, nil
	}

	if dir == "" {
		dir = cfg.OutputDir
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("site directory %s not found\nRun `docsearch site` first or pass --origin", dir)
	}
	return loader.FSFetcher{FS: os.DirFS(dir)}, nil
}

// mountWidget mounts the search widget for the page named by --page and
// waits for the initial index load.
func mountWidget(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*widget.Widget, error) {
	fetcher, err := newFetcher(cmd, cfg)
	if err != nil {
		return nil, err
	}
	pagePath, _ := cmd.Flags().GetString("page")
	timeout, err := cfg.FetchTimeout()
	if err != nil {
		return nil, err
	}

	w, ok := widget.Mount(ctx, widget.NewPage(pagePath, widget.InputID, widget.ResultsID), widget.Deps{
		Fetcher:       fetcher,
		Resolver:      cfg.Resolver(),
		IndexFile:     cfg.IndexFile,
		Limit:         cfg.Search.MaxResults,
		PreviewLength: cfg.Search.PreviewLength,
		Timeout:       timeout,
		Logger:        logger,
	})
	if !ok {
		return nil, fmt.Errorf("search widget could not be mounted")
	}
	if err := w.Loader().Wait(ctx); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}
