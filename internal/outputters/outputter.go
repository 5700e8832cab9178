// Package outputters dispatches results to the configured formatter.
package outputters

import (
	"fmt"

	"github.com/dotcommander/projroot/internal/config"
	"github.com/dotcommander/projroot/internal/output"
	"github.com/dotcommander/projroot/internal/types"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// FormatResult emits a root search result using the configured format.
// Breakdown rows are included where the format carries them.
func (o *Outputter) FormatResult(result *types.Result, details []types.ScoreDetail) error {
	switch o.config.Format {
	case types.FormatConsole:
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.config.Rel)
		return formatter.FormatResult(result)
	case types.FormatJSON:
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.FormatResult(result, details)
	case types.FormatMarkdown:
		formatter := output.NewMarkdownFormatter(o.config.Output)
		return formatter.FormatResult(result, details)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}

// FormatDetails emits one directory's score breakdown.
func (o *Outputter) FormatDetails(dir string, score int, details []types.ScoreDetail) error {
	switch o.config.Format {
	case types.FormatConsole:
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.config.Rel)
		return formatter.FormatDetails(dir, score, details)
	case types.FormatJSON:
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.FormatDetails(dir, score, details)
	case types.FormatMarkdown:
		formatter := output.NewMarkdownFormatter(o.config.Output)
		return formatter.FormatDetails(dir, score, details)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}

// FormatScan emits the probable roots found under a scanned tree.
func (o *Outputter) FormatScan(start string, roots []types.Candidate) error {
	switch o.config.Format {
	case types.FormatConsole:
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.config.Rel)
		return formatter.FormatScan(roots)
	case types.FormatJSON:
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.FormatScan(start, roots)
	case types.FormatMarkdown:
		formatter := output.NewMarkdownFormatter(o.config.Output)
		return formatter.FormatScan(start, roots)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
