package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/projroot/internal/outputters"
)

var scoreCmd = &cobra.Command{
	Use:   "score [dir]",
	Short: "Score one directory and show which rules fired",
	Long: `Score exactly one directory, without walking its ancestors, and print a
breakdown row for every rule that fired: the pattern, its kind, what it
matched, and the weight it contributed.

Useful for understanding why a directory does or does not win:

  projroot score .
  projroot score --no-defaults -w './go.mod:40' /path/to/dir`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(args []string) error {
	cfg, scorer, err := setup(args)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(cfg.Start)
	if err != nil {
		return fmt.Errorf("cannot resolve path %q: %w", cfg.Start, err)
	}
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	score, details := scorer.ScoreDetailed(absPath)

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.FormatDetails(absPath, score, details); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
