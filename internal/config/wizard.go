package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// docsDirCandidates are directories commonly holding markdown docs.
var docsDirCandidates = []string{"docs", "content", "doc", "site"}

// detectDocsDir returns the first existing well-known docs directory.
func detectDocsDir() string {
	for _, dir := range docsDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docsearch! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	docsPrompt := promptui.Prompt{
		Label:   "Markdown docs directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	layoutPrompt := promptui.Select{
		Label: "Where will the site be served from",
		Items: []string{
			"domain root      (https://docs.example.com/)",
			"repository path  (https://user.github.io/<repo>/)",
		},
	}
	layoutIdx, _, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("layout selection: %w", err)
	}
	if layoutIdx == 1 {
		basePrompt := promptui.Prompt{
			Label: "Repository subpath (e.g. /Study-MAT)",
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("subpath is required")
				}
				return nil
			},
		}
		base, err := basePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base path: %w", err)
		}
		cfg.BasePath = base
	}

	maxPrompt := promptui.Prompt{
		Label:   "Maximum search results",
		Default: strconv.Itoa(cfg.Search.MaxResults),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return fmt.Errorf("enter a positive number")
			}
			return nil
		},
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max results: %w", err)
	}
	cfg.Search.MaxResults, _ = strconv.Atoi(maxStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
