package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/projroot/internal/config"
	"github.com/dotcommander/projroot/internal/pattern"
	"github.com/dotcommander/projroot/internal/types"
	"github.com/dotcommander/projroot/internal/weights"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the effective weight table",
	Long: `Print the weight table after merging all sources: the built-in defaults
(unless --no-defaults), the weights file, the inline JSON object, and any
individual -w overrides, in that order of precedence.

Each pattern is annotated with its kind (child, name, or parent). With
--format json the table is emitted as a JSON object in table order.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWeights(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}

func runWeights() error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	table, err := weights.Build(cfg.Weights.NoDefaults, cfg.Weights.File, cfg.Weights.JSON, cfg.Weights.Overrides)
	if err != nil {
		return err
	}

	if cfg.Format == types.FormatJSON {
		return printWeightsJSON(table, cfg.Output)
	}

	for _, e := range table.Entries() {
		kind, _ := pattern.Classify(e.Pattern)
		fmt.Printf("%-8s %5d  %s\n", kind, e.Weight, e.Pattern)
	}
	return nil
}

// printWeightsJSON emits the table as a JSON object. The object is built by
// hand so table order survives; json.Marshal of a map would sort the keys.
func printWeightsJSON(table *weights.Table, outputFile string) error {
	var builder strings.Builder
	builder.WriteString("{")
	for i, e := range table.Entries() {
		if i > 0 {
			builder.WriteString(",")
		}
		key, err := json.Marshal(e.Pattern)
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		builder.WriteString(fmt.Sprintf("\n  %s: %d", key, e.Weight))
	}
	if table.Len() > 0 {
		builder.WriteString("\n")
	}
	builder.WriteString("}\n")

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(builder.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	fmt.Print(builder.String())
	return nil
}
