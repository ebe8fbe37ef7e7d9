package config

// Config is the top-level docsearch configuration, corresponding to .docsearch.yml.
type Config struct {
	SiteName  string       `yaml:"site_name" koanf:"site_name"`
	DocsDir   string       `yaml:"docs_dir" koanf:"docs_dir"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	BasePath  string       `yaml:"base_path" koanf:"base_path"`
	IndexFile string       `yaml:"index_file" koanf:"index_file"`
	Origin    string       `yaml:"origin" koanf:"origin"`
	Exclude   []string     `yaml:"exclude" koanf:"exclude"`
	Search    SearchConfig `yaml:"search" koanf:"search"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
}

// SearchConfig holds query and rendering settings.
type SearchConfig struct {
	MaxResults    int    `yaml:"max_results" koanf:"max_results"`
	PreviewLength int    `yaml:"preview_length" koanf:"preview_length"`
	FetchTimeout  string `yaml:"fetch_timeout" koanf:"fetch_timeout"`
}

// ServerConfig holds settings for `docsearch serve`.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
