package commands

import (
	"log/slog"
	"os"

	"github.com/emberstack/firedash/internal/cli/config"
	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/store"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    *store.Store
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a store and renderer.
// The store is constructed but not loaded; commands call LoadFile so
// they can show progress their own way.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	if err := cfg.ValidateDataFile(); err != nil {
		return nil, nil, err
	}
	if err := applyStateNames(cfg); err != nil {
		return nil, nil, err
	}

	st := store.New(store.Config{
		Path:   cfg.Data,
		Logger: logger,
	})

	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	cleanup := func() {
		_ = st.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Store:    st,
		Renderer: r,
	}, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without a store.
// Useful for commands that don't touch the dataset.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	data := getEnvOrDefault("FIREDASH_DATA", config.DefaultData)
	states := os.Getenv("FIREDASH_STATES")
	verbose := os.Getenv("FIREDASH_VERBOSE") == "true"
	outputFormat := os.Getenv("FIREDASH_OUTPUT")

	return &config.Config{
		Data:    data,
		States:  states,
		Verbose: verbose,
		Output:  outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// applyStateNames installs the optional state-name override file.
func applyStateNames(cfg *config.Config) error {
	if cfg.States == "" {
		return nil
	}
	if err := cfg.ValidateStatesFile(); err != nil {
		return err
	}
	return dataset.LoadStateNames(cfg.States)
}
