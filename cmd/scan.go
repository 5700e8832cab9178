package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/projroot/internal/discovery"
	"github.com/dotcommander/projroot/internal/outputters"
)

var (
	scanMinScore int
	scanMaxDepth int
	scanExcludes []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Find probable project roots under a directory tree",
	Long: `Walk a directory tree, score every directory, and report the ones scoring
at least --min-score as probable project roots, best first.

Subtrees matching an --exclude glob are pruned without being scored; the
defaults prune .git, node_modules, vendor, .venv, venv, and __pycache__.
Globs use doublestar syntax against the slash-separated path relative to the
scanned directory, and a bare name like "dist" prunes at any depth.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScan(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVar(&scanMinScore, "min-score", 30, "Minimum score for a directory to count as a root")
	scanCmd.Flags().IntVar(&scanMaxDepth, "max-depth", 0, "Maximum depth below the scanned directory (0 = unlimited)")
	scanCmd.Flags().StringArrayVar(&scanExcludes, "exclude", nil, "Glob for subtrees to prune (repeatable, replaces the defaults)")

	viper.BindPFlag("scan.minScore", scanCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("scan.maxDepth", scanCmd.Flags().Lookup("max-depth"))
	viper.BindPFlag("scan.exclude", scanCmd.Flags().Lookup("exclude"))
}

func runScan(args []string) error {
	cfg, scorer, err := setup(args)
	if err != nil {
		return err
	}

	scanner := discovery.NewScanner(cfg.Start, scorer, cfg.Scan.Exclude, cfg.Scan.MinScore, cfg.Scan.MaxDepth)
	roots, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("error scanning %s: %w", cfg.Start, err)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.FormatScan(cfg.Start, roots); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
