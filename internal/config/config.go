// Package config loads the launcher configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	UI   UIConfig   `toml:"ui"`
	Exec ExecConfig `toml:"exec"`
}

// UIConfig represents UI-related configuration
type UIConfig struct {
	Prompt         string `toml:"prompt"`
	MaxSuggestions int    `toml:"max_suggestions"`
	AccentColor    string `toml:"accent_color"`
}

// ExecConfig controls how commands are launched.
type ExecConfig struct {
	// Shell overrides the interpreter invocation, e.g. "bash -lc".
	// Empty means $SHELL, falling back to sh.
	Shell string `toml:"shell"`
}

// ConfigService handles configuration loading
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading from the per-user
// config directory.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "runbar", "config.toml"),
	}
}

// Load loads the configuration file, returning defaults when no file
// exists. A missing config is not an error.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize backfills values the file left empty or out of range.
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.UI.Prompt == "" {
		c.UI.Prompt = defaults.UI.Prompt
	}
	if c.UI.MaxSuggestions <= 0 {
		c.UI.MaxSuggestions = defaults.UI.MaxSuggestions
	}
	if c.UI.AccentColor == "" {
		c.UI.AccentColor = defaults.UI.AccentColor
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Prompt:         "> ",
			MaxSuggestions: 20,
			AccentColor:    "33",
		},
	}
}
