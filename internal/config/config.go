package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config represents the notionclip configuration
type Config struct {
	LogFile                string `json:"log_file"`
	LogLevel               string `json:"log_level,omitempty"`
	CacheSize              int    `json:"cache_size,omitempty"`
	EnableInlineFormatting bool   `json:"enable_inline_formatting"`
	EnableMediaDetection   bool   `json:"enable_media_detection"`
	ApplyFormatting        bool   `json:"apply_formatting"`
	MaxRichTextLength      int    `json:"max_rich_text_length,omitempty"`
	MaxTableWidth          int    `json:"max_table_width,omitempty"`
	MaxNestingDepth        int    `json:"max_nesting_depth,omitempty"`
	MaxChildrenPerBlock    int    `json:"max_children_per_block,omitempty"`
	MaxBlocksPerRequest    int    `json:"max_blocks_per_request,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:                "/tmp/notionclip.log",
		LogLevel:               "info",
		CacheSize:              256,
		EnableInlineFormatting: true,
		EnableMediaDetection:   true,
		ApplyFormatting:        true,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notionclip", "config.json")
	}
	return filepath.Join(home, ".config", "notionclip", "config.json")
}

// CachePath returns the directory for on-disk artifacts
// Can be overridden for testing
var CachePath = func() string {
	return filepath.Join(xdg.CacheHome, "notionclip")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.LogFile, err = expandPath(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to expand log_file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}

	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}

	for _, limit := range []struct {
		name string
		v    int
	}{
		{"cache_size", c.CacheSize},
		{"max_rich_text_length", c.MaxRichTextLength},
		{"max_table_width", c.MaxTableWidth},
		{"max_nesting_depth", c.MaxNestingDepth},
		{"max_children_per_block", c.MaxChildrenPerBlock},
		{"max_blocks_per_request", c.MaxBlocksPerRequest},
	} {
		if limit.v < 0 {
			return fmt.Errorf("%s must not be negative", limit.name)
		}
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
