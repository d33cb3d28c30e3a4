// Package config provides configuration management for the firedash
// CLI: defaults, the firedash.yaml file, FIREDASH_ environment
// variables, and flags, with flags taking the highest precedence.
package config

import (
	sharedcfg "github.com/emberstack/firedash/internal/config"
)

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port     int  `koanf:"port"`
	AutoOpen bool `koanf:"auto_open"`
	Watch    bool `koanf:"watch"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     sharedcfg.DefaultPort,
		AutoOpen: true,
		Watch:    true,
	}
}

// GetUIConfig returns the UI config with defaults applied for any
// unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = sharedcfg.DefaultPort
	}
	return ui
}

// Config holds all CLI configuration options.
type Config struct {
	// Data is the dataset CSV path, resolved against ProjectRoot when
	// relative.
	Data string `koanf:"data"`
	// States optionally overrides the embedded state-name table with a
	// YAML file of code: name pairs.
	States  string    `koanf:"states"`
	Verbose bool      `koanf:"verbose"`
	Output  string    `koanf:"output"`
	UI      *UIConfig `koanf:"ui"`

	// ProjectRoot is the directory config-relative paths resolve
	// against. Set during load, never from the file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultData   = sharedcfg.DefaultDataPath
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
