// Package config handles wellwish configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration
type Config struct {
	// Paths
	DataDir string `json:"data_dir"`

	// Logging
	Log LogConfig `json:"log"`

	// Greeting pipeline
	Greeting GreetingConfig `json:"greeting"`
}

// LogConfig for the logger
type LogConfig struct {
	Level string `json:"level"`
}

// GreetingConfig tunes the greeting pipeline
type GreetingConfig struct {
	// MaxAttempts bounds the approval loop per contact per run
	MaxAttempts int `json:"max_attempts"`
	// RecentWindowDays is how far back a chat message counts as recent
	RecentWindowDays int `json:"recent_window_days"`
}

// Default returns default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		DataDir: filepath.Join(home, ".wellwish"),
		Log: LogConfig{
			Level: "info",
		},
		Greeting: GreetingConfig{
			MaxAttempts:      5,
			RecentWindowDays: 30,
		},
	}
}

// Load loads config from file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override the file, so one-off runs don't
// need edits to config.json.
func (c *Config) applyEnv() {
	if dir := os.Getenv("WELLWISH_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if level := os.Getenv("WELLWISH_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if v := os.Getenv("WELLWISH_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Greeting.MaxAttempts = n
		}
	}
}

// Save saves config to file
func (c *Config) Save(path string) error {
	if path == "" {
		path = filepath.Join(c.DataDir, "config.json")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// DatabasePath returns where the SQLite file lives
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "wellwish.db")
}
