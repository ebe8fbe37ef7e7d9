package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/search"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCSEARCH_*). Nested keys use a double
// underscore: DOCSEARCH_SEARCH__MAX_RESULTS -> search.max_results.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("DOCSEARCH_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "DOCSEARCH_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.BasePath = basepath.Clean(cfg.BasePath)
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.IndexFile == "" || strings.Contains(c.IndexFile, "..") {
		return fmt.Errorf("invalid index_file %q", c.IndexFile)
	}
	if c.Origin != "" {
		u, err := url.Parse(c.Origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid origin %q: must be an http(s) URL", c.Origin)
		}
	}
	if c.Search.MaxResults < 1 || c.Search.MaxResults > search.MaxLimit {
		return fmt.Errorf("search.max_results must be between 1 and %d", search.MaxLimit)
	}
	if c.Search.PreviewLength < 0 {
		return fmt.Errorf("search.preview_length must be non-negative")
	}
	if _, err := c.FetchTimeout(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}

// FetchTimeout parses search.fetch_timeout.
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Search.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Search.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid search.fetch_timeout %q: %w", c.Search.FetchTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("search.fetch_timeout must be non-negative")
	}
	return d, nil
}

// Resolver returns the base path resolver for the configured subpath.
func (c *Config) Resolver() basepath.Resolver {
	return basepath.New(c.BasePath)
}
