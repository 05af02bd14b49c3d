package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Every field has a sensible default and can
// be overridden by CLI flags.
type Config struct {
	// DataFile is the transactions file, optionally with a format prefix
	// ("xlsx:sales.xlsx").
	DataFile string `yaml:"data_file,omitempty"`

	// Source is the data source type when DataFile carries no prefix.
	Source string `yaml:"source,omitempty"`

	// Currency is the ISO code used for all rendered amounts.
	Currency string `yaml:"currency,omitempty"`

	// Addr is the HTTP listen address for serve mode.
	Addr string `yaml:"addr,omitempty"`

	// StaticDir, when set, is served as the web UI.
	StaticDir string `yaml:"static_dir,omitempty"`
}

// NewDefaultConfig returns the defaults used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Source:   "json",
		Currency: "INR",
		Addr:     ":8000",
	}
}

// DefaultConfigPath returns the default config file path
// (~/.purchase-chatbot/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".purchase-chatbot", "config.yaml")
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
