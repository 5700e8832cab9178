package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/projroot/internal/config"
	"github.com/dotcommander/projroot/internal/logging"
	"github.com/dotcommander/projroot/internal/outputters"
	"github.com/dotcommander/projroot/internal/pattern"
	"github.com/dotcommander/projroot/internal/project"
	"github.com/dotcommander/projroot/internal/scoring"
	"github.com/dotcommander/projroot/internal/types"
	"github.com/dotcommander/projroot/internal/weights"
)

var (
	quiet        bool
	verbose      bool
	relPath      bool
	outputFormat string
	outputFile   string
	logLevel     string
	weightFlags  []string
	weightsJSON  string
	weightsFile  string
	noDefaults   bool
)

var rootCmd = &cobra.Command{
	Use:   "projroot [start]",
	Short: "Find the project root for a path by weighted marker scoring",
	Long: `Projroot heuristically identifies the project root for a starting path.

The start directory and every one of its ancestors is scored against a table
of weighted filesystem patterns: marker files like a package manifest reward
a candidate, directories like node_modules penalize it. The highest-scoring
candidate wins, and ties go to the candidate closest to the start.

Weight patterns come in three kinds, classified by syntax:
  ./name    child pattern  - the candidate contains a matching entry
  name      name pattern   - the candidate itself has a matching name
  name/     parent pattern - an ancestor of the candidate has a matching name

Patterns support "*" (matches within a name) and "**" (matches across path
separators); every other character is literal. The built-in table can be
replaced or extended from a weights file, an inline JSON object, and
individual overrides, in that order of precedence.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFind(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show every candidate and its score")
	rootCmd.PersistentFlags().BoolVar(&relPath, "rel", false, "Print paths relative to the current directory")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json/markdown reports")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringArrayVarP(&weightFlags, "weight", "w", nil, "Weight override as 'pattern:value' or 'pattern=value' (repeatable)")
	rootCmd.PersistentFlags().StringVar(&weightsJSON, "weights-json", "", "Weights as an inline JSON object")
	rootCmd.PersistentFlags().StringVar(&weightsFile, "weights-file", "", "Weights file (json|yaml|toml)")
	rootCmd.PersistentFlags().BoolVar(&noDefaults, "no-defaults", false, "Start from an empty weight table instead of the defaults")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("rel", rootCmd.PersistentFlags().Lookup("rel"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("weights.overrides", rootCmd.PersistentFlags().Lookup("weight"))
	viper.BindPFlag("weights.json", rootCmd.PersistentFlags().Lookup("weights-json"))
	viper.BindPFlag("weights.file", rootCmd.PersistentFlags().Lookup("weights-file"))
	viper.BindPFlag("weights.noDefaults", rootCmd.PersistentFlags().Lookup("no-defaults"))
}

func initConfig() {
	configPaths := []string{".projrootrc.json", ".projrootrc.yaml", ".projrootrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// setup loads the configuration, initializes logging, and compiles the
// effective weight table into a scorer. Every subcommand goes through here.
func setup(args []string) (*config.Config, *scoring.Scorer, error) {
	startPath := ""
	if len(args) > 0 {
		startPath = args[0]
	}

	cfg, err := config.LoadConfig(startPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	logging.Setup(cfg.LogLevel)

	table, err := weights.Build(cfg.Weights.NoDefaults, cfg.Weights.File, cfg.Weights.JSON, cfg.Weights.Overrides)
	if err != nil {
		return nil, nil, err
	}

	return cfg, scoring.NewScorer(pattern.Compile(table)), nil
}

func runFind(args []string) error {
	cfg, scorer, err := setup(args)
	if err != nil {
		return err
	}

	result, err := project.FindProjectRoot(cfg.Start, scorer)
	if err != nil {
		return err
	}

	// Verbose json/markdown reports carry the winner's breakdown rows.
	var details []types.ScoreDetail
	if cfg.Verbose && cfg.Format != types.FormatConsole {
		_, details = scorer.ScoreDetailed(result.Root)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.FormatResult(result, details); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
