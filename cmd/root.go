package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Static documentation sites with built-in substring search",
	Long: `docsearch builds static documentation sites from markdown together with
a search.json index, and searches that index from a local server, the
terminal, or AI agents via MCP. Sites may be published at a domain root or
under a repository subpath; the index is found in either layout.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docsearch.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
