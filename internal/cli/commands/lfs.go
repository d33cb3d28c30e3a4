package commands

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// LFSOptions holds options for the lfs setup command.
type LFSOptions struct {
	DryRun  bool
	Commit  bool
	Message string
}

// lfsStep is one git invocation in the large-file flow.
type lfsStep struct {
	display string
	args    []string
	// optional steps are reported as skipped when git rejects them,
	// e.g. git rm --cached on a file that was never committed
	optional bool
}

// NewLFSCommand creates the lfs command group.
func NewLFSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lfs",
		Short: "Git LFS helpers for the dataset",
	}
	cmd.AddCommand(newLFSSetupCommand())
	return cmd
}

// newLFSSetupCommand creates the lfs setup subcommand.
func newLFSSetupCommand() *cobra.Command {
	opts := &LFSOptions{}

	cmd := &cobra.Command{
		Use:   "setup [file]",
		Short: "Move the dataset CSV under Git LFS",
		Long: `Run the Git LFS flow for the wildfire CSV.

Installs the LFS hooks, tracks *.csv, re-stages the dataset so the
pointer file replaces the blob, and optionally commits. Defaults to the
configured dataset path when no file is given.`,
		Example: `  # Track the configured dataset
  firedash lfs setup

  # Track another file and commit the change
  firedash lfs setup data/fires_light.csv --commit

  # Show the plan without running anything
  firedash lfs setup --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLFSSetup(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the plan without running git")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit the staged changes")
	cmd.Flags().StringVar(&opts.Message, "message", "Track dataset with Git LFS", "Commit message used with --commit")

	return cmd
}

func runLFSSetup(cmd *cobra.Command, args []string, opts *LFSOptions) error {
	cctx := NewCommandContextWithoutStore(cmd)
	r := cctx.Renderer

	file := cctx.Cfg.Data
	if len(args) > 0 {
		file = args[0]
	}

	steps := []lfsStep{
		{display: "git lfs install", args: []string{"lfs", "install"}},
		{display: `git lfs track "*.csv"`, args: []string{"lfs", "track", "*.csv"}},
		{display: "git add .gitattributes", args: []string{"add", ".gitattributes"}},
		{display: fmt.Sprintf("git rm --cached %s", file), args: []string{"rm", "--cached", file}, optional: true},
		{display: fmt.Sprintf("git add %s", file), args: []string{"add", file}},
	}
	if opts.Commit {
		steps = append(steps, lfsStep{
			display: fmt.Sprintf("git commit -m %q", opts.Message),
			args:    []string{"commit", "-m", opts.Message},
		})
	}

	if opts.DryRun {
		r.Header(1, "LFS Setup Plan")
		for _, step := range steps {
			r.Println("  " + step.display)
		}
		r.Muted("Dry run: nothing executed")
		return nil
	}

	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git not found in PATH: %w", err)
	}

	r.Header(1, "LFS Setup")
	for _, step := range steps {
		gitCmd := exec.CommandContext(cmd.Context(), "git", step.args...)
		if root := cctx.Cfg.ProjectRoot; root != "" {
			gitCmd.Dir = root
		}

		out, err := gitCmd.CombinedOutput()
		if err != nil {
			detail := strings.TrimSpace(string(out))
			if step.optional {
				r.StatusLine(step.display, "skipped", firstLine(detail))
				continue
			}
			r.StatusLine(step.display, "failed", firstLine(detail))
			return fmt.Errorf("%s: %w", step.display, err)
		}
		r.StatusLine(step.display, "success", "")
	}

	r.Println("")
	r.Success("Dataset is tracked by Git LFS")
	return nil
}

// firstLine trims multi-line git output down to its first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
