package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the documentation index",
	Long: `Loads the site's search index, from a built site directory or a published
origin, and prints the pages whose title or content contains the text.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	addSourceFlags(queryCmd)
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().Bool("html", false, "output the rendered results HTML")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	w, err := mountWidget(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if w.Loader().Status() == loader.StatusFailed {
		return fmt.Errorf("%w (tried %v)", loader.ErrIndexUnavailable, w.Loader().Candidates())
	}

	sf := w.Input(args[0])
	if sf.Visibility == render.Hidden {
		return fmt.Errorf("query must be at least 2 characters")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	htmlOutput, _ := cmd.Flags().GetBool("html")
	switch {
	case jsonOutput:
		return printQueryResultsJSON(sf)
	case htmlOutput:
		out, err := sf.HTML()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printQueryResultsTable(sf)
	return nil
}

type queryResultJSON struct {
	Rank    int    `json:"rank"`
	Title   string `json:"title"`
	Href    string `json:"href"`
	Preview string `json:"preview,omitempty"`
}

func printQueryResultsJSON(sf render.Surface) error {
	out := make([]queryResultJSON, 0, sf.Count())
	for i, it := range sf.Items {
		out = append(out, queryResultJSON{
			Rank:    i + 1,
			Title:   it.Title,
			Href:    it.Href,
			Preview: it.Preview,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printQueryResultsTable(sf render.Surface) {
	if p := sf.Placeholder; p != nil {
		fmt.Printf("%s. %s.\n", p.Title, p.Hint)
		return
	}
	fmt.Printf("Found %d results:\n\n", sf.Count())
	for i, it := range sf.Items {
		fmt.Printf("  %d. %s\n", i+1, it.Title)
		fmt.Printf("     %s\n", it.Href)
		if it.Preview != "" {
			fmt.Printf("     %s\n", it.Preview)
		}
		fmt.Println()
	}
}
