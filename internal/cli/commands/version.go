package commands

import (
	"runtime"

	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display firedash version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cctx := NewCommandContextWithoutStore(cmd)
			r := cctx.Renderer

			info := output.VersionOutput{
				Version:   version,
				GitCommit: commit,
				BuildDate: date,
				GoVersion: runtime.Version(),
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Printf("firedash v%s\n", info.Version)
			r.Printf("  commit: %s\n", info.GitCommit)
			r.Printf("  built:  %s\n", info.BuildDate)
			r.Printf("  go:     %s\n", info.GoVersion)
			return nil
		},
	}
}
