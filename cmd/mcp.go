package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/loader"
	mcpserver "github.com/ziadkadry99/docsearch/internal/mcp"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing documentation search tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		fetcher, err := newFetcher(cmd, cfg)
		if err != nil {
			return err
		}
		pagePath, _ := cmd.Flags().GetString("page")
		timeout, err := cfg.FetchTimeout()
		if err != nil {
			return err
		}

		store := searchindex.NewStore()
		ld := loader.New(fetcher, store, loader.Options{
			Candidates: cfg.Resolver().IndexCandidates(pagePath, cfg.IndexFile),
			Timeout:    timeout,
			Logger:     logger,
		})
		ld.Start(context.Background())

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "docsearch MCP server started on stdio (candidates=%v)\n", ld.Candidates())

		srv := mcpserver.NewServer(store, ld, mcpserver.Options{
			Resolver:      cfg.Resolver(),
			MaxResults:    cfg.Search.MaxResults,
			PreviewLength: cfg.Search.PreviewLength,
		})
		return srv.Serve()
	},
}

func init() {
	addSourceFlags(mcpCmd)
	rootCmd.AddCommand(mcpCmd)
}
