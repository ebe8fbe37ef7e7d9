package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site with search endpoints",
	Long: `Serves the generated site at / and, when base_path is set, under that
subpath too. Search is available as JSON (/api/search), an HTML fragment
(/search) and a live WebSocket session (/ws/search).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().String("dir", "", "site directory to serve (defaults to output_dir)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.OutputDir
	}
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		return fmt.Errorf("site directory %s not found\nRun `docsearch site` first", dir)
	}
	timeout, err := cfg.FetchTimeout()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:          port,
		SiteDir:       dir,
		BasePath:      cfg.BasePath,
		IndexFile:     cfg.IndexFile,
		MaxResults:    cfg.Search.MaxResults,
		PreviewLength: cfg.Search.PreviewLength,
		FetchTimeout:  timeout,
		AllowAll:      cfg.Server.AllowAll,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	fmt.Printf("Serving %s at http://localhost:%d", dir, port)
	if cfg.BasePath != "" {
		fmt.Printf(" and http://localhost:%d%s/", port, cfg.BasePath)
	}
	fmt.Println(" (press Ctrl+C to stop)")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
