package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("data is required")
	}
	if ui := c.GetUIConfig(); ui.Port < 1 || ui.Port > 65535 {
		return fmt.Errorf("ui.port must be between 1 and 65535, got %d", ui.Port)
	}

	// Only validate file existence if we're running a command that needs it
	// This allows help commands to work without the dataset present
	return nil
}

// ValidateDataFile checks if the dataset CSV exists.
func (c *Config) ValidateDataFile() error {
	if _, err := os.Stat(c.Data); os.IsNotExist(err) {
		return fmt.Errorf("dataset file does not exist: %s\nHint: Run scripts/setup_lfs.sh (or git lfs pull) to fetch it, or use --data to specify a different path", c.Data)
	}
	return nil
}

// ValidateStatesFile checks the optional state-name override file.
func (c *Config) ValidateStatesFile() error {
	if c.States == "" {
		return nil
	}
	if _, err := os.Stat(c.States); os.IsNotExist(err) {
		return fmt.Errorf("states file does not exist: %s\nHint: Remove the states setting to use the built-in state names", c.States)
	}
	return nil
}
