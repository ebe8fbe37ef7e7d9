package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/progress"
	"github.com/ziadkadry99/docsearch/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate a static documentation website",
	Long:  `Generates a self-contained static HTML site from markdown docs, with sidebar navigation, a table of contents per page and a search.json index.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	siteCmd.Flags().String("base-path", "", "override the subpath the site is published under")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	basePath := cfg.BasePath
	if cmd.Flags().Changed("base-path") {
		basePath, _ = cmd.Flags().GetString("base-path")
	}

	generator := site.NewSiteGenerator(cfg.DocsDir, outputDir, cfg.SiteName)
	generator.BasePath = basePath
	generator.IndexFile = cfg.IndexFile
	generator.MaxResults = cfg.Search.MaxResults
	generator.Exclude = cfg.Exclude
	generator.Reporter = progress.NewReporter("Rendering pages")
	generator.Logger = logger

	pageCount, err := generator.Generate()
	if errors.Is(err, site.ErrNoDocs) {
		return fmt.Errorf("no markdown files in %s\nSet docs_dir in %s or run `docsearch init`", cfg.DocsDir, cfgFile)
	}
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
