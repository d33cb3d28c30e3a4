package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatsCommand(t *testing.T) {
	cmd := NewStatsCommand()

	assert.Equal(t, "stats", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"top", "from", "to", "state"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"port", "no-browser", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewReduceCommand(t *testing.T) {
	cmd := NewReduceCommand()

	assert.Equal(t, "reduce <output.csv>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"min-year", "fraction", "rows", "seed"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewLFSCommand(t *testing.T) {
	cmd := NewLFSCommand()

	assert.Equal(t, "lfs", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	var setup bool
	for _, c := range cmd.Commands() {
		if c.Name() == "setup" {
			setup = true
			for _, flag := range []string{"dry-run", "commit", "message"} {
				assert.NotNil(t, c.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		}
	}
	assert.True(t, setup, "lfs should have a setup subcommand")
}
