// Package config loads the editor's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds tradeflow configuration.
type Config struct {
	Feed      FeedConfig      `toml:"feed"`
	Workflows WorkflowsConfig `toml:"workflows"`
	Log       LogConfig       `toml:"log"`
}

// FeedConfig controls the live-price WebSocket client.
type FeedConfig struct {
	Enabled bool     `toml:"enabled"`
	URL     string   `toml:"url"`
	Symbols []string `toml:"symbols"`
}

// WorkflowsConfig controls where workflow JSON files live.
type WorkflowsConfig struct {
	Dir string `toml:"dir"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	File string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			Enabled: false,
			URL:     "ws://127.0.0.1:8000/ws/prices",
			Symbols: []string{"BTCUSD"},
		},
		Workflows: WorkflowsConfig{Dir: filepath.Join(configDir(), "workflows")},
		Log:       LogConfig{File: filepath.Join(stateDir(), "tradeflow.log")},
	}
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// configDir returns the tradeflow config directory path.
func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tradeflow")
}

// stateDir returns the tradeflow state directory path.
func stateDir() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "tradeflow")
}
