package config

// DefaultExcludes are glob patterns skipped when building the site.
var DefaultExcludes = []string{
	"**/_*.md",
	"**/drafts/**",
	".git/**",
	"node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:  "Documentation",
		DocsDir:   "docs",
		OutputDir: "_site",
		IndexFile: "search.json",
		Exclude:   DefaultExcludes,
		Search: SearchConfig{
			MaxResults:    5,
			PreviewLength: 150,
			FetchTimeout:  "10s",
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
