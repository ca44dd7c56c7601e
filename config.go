package inflowave

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .inflowave.yaml configuration file.
// It carries the offline schema symbols the completion engine falls back to
// when no schema provider is reachable, plus editor-facing settings.
type Config struct {
	// Version is the backend version key (family name or raw version,
	// e.g. "1.x" or "2.7.1"). Unknown values fall back to the baseline.
	Version string `yaml:"version,omitempty"`

	// Database is the currently selected database, if any.
	Database string `yaml:"database,omitempty"`

	// Databases lists known database names for completion.
	Databases []string `yaml:"databases,omitempty"`

	// Measurements lists known measurement names for completion.
	Measurements []string `yaml:"measurements,omitempty"`

	// Fields and Tags are the default symbols used when a per-measurement
	// lookup is unavailable or fails.
	Fields []string `yaml:"fields,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`

	// Schema maps measurement names to their known fields and tags.
	Schema map[string]SchemaEntry `yaml:"schema,omitempty"`

	// LSP holds language-server settings.
	LSP LSPConfig `yaml:"lsp,omitempty"`
}

// SchemaEntry is the per-measurement symbol set.
type SchemaEntry struct {
	Fields []string `yaml:"fields,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

// LSPConfig holds language-server settings.
type LSPConfig struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level,omitempty"`
}

// VersionKey returns the configured version key, or the baseline family.
func (c *Config) VersionKey() string {
	if c == nil || c.Version == "" {
		return DefaultFamily
	}

	return c.Version
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".inflowave.yaml", ".inflowave.yml", "inflowave.yaml", "inflowave.yml"}

// LoadConfig finds and loads the nearest .inflowave.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
