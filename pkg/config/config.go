// Package config loads CLI configuration for citags.
//
// Loading order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. User config: $HOME/.config/citags/config.yaml
// 3. Project config: ./.citags.yaml
// 4. Command-line flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the citags CLI configuration.
type Config struct {
	// Format selects the output rendering: text, json or yaml.
	Format string `yaml:"format"`
	// Dir is the repository directory used for git metadata extraction.
	Dir string `yaml:"dir"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
	// Extra holds static tags merged into every collection. Empty values
	// are ignored.
	Extra map[string]string `yaml:"extra_tags,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{Format: "text"}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected text, json or yaml)", c.Format)
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault searches the default locations, preferring the project config
// over the user config. A missing file yields the defaults, not an error.
func LoadDefault() (*Config, error) {
	candidates := []string{".citags.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "citags", "config.yaml"))
	}
	for _, path := range candidates {
		cfg, err := Load(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return Default(), nil
}
