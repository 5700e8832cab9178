package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/projroot/internal/types"
)

// MarkdownFormatter formats results as Markdown
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// FormatResult renders the root search result with a candidates table.
func (f *MarkdownFormatter) FormatResult(result *types.Result, details []types.ScoreDetail) error {
	var builder strings.Builder

	f.writeHeader(&builder)
	builder.WriteString(fmt.Sprintf("**Start:** `%s`\n\n", result.Start))
	builder.WriteString(fmt.Sprintf("**Root:** `%s` (score %d)\n\n", result.Root, result.Score))

	builder.WriteString("## Candidates\n\n")
	builder.WriteString("| Path | Score | Winner |\n")
	builder.WriteString("|------|------:|:------:|\n")
	for _, c := range result.Candidates {
		winner := ""
		if c.Winner {
			winner = "**"
		}
		builder.WriteString(fmt.Sprintf("| `%s` | %d | %s |\n", c.Path, c.Score, winner))
	}
	builder.WriteString("\n")

	if len(details) > 0 {
		f.writeDetails(&builder, details)
	}

	return f.write(builder.String())
}

// FormatDetails renders one directory's score breakdown.
func (f *MarkdownFormatter) FormatDetails(dir string, score int, details []types.ScoreDetail) error {
	var builder strings.Builder

	f.writeHeader(&builder)
	builder.WriteString(fmt.Sprintf("**Directory:** `%s` (score %d)\n\n", dir, score))
	f.writeDetails(&builder, details)

	return f.write(builder.String())
}

// FormatScan renders the probable roots found under a scanned tree.
func (f *MarkdownFormatter) FormatScan(start string, roots []types.Candidate) error {
	var builder strings.Builder

	f.writeHeader(&builder)
	builder.WriteString(fmt.Sprintf("**Scanned:** `%s`\n\n", start))

	builder.WriteString("## Probable Roots\n\n")
	if len(roots) == 0 {
		builder.WriteString("No project roots found.\n")
		return f.write(builder.String())
	}
	builder.WriteString("| Path | Score |\n")
	builder.WriteString("|------|------:|\n")
	for _, r := range roots {
		builder.WriteString(fmt.Sprintf("| `%s` | %d |\n", r.Path, r.Score))
	}
	builder.WriteString("\n")

	return f.write(builder.String())
}

func (f *MarkdownFormatter) writeHeader(builder *strings.Builder) {
	builder.WriteString("# Projroot Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
}

func (f *MarkdownFormatter) writeDetails(builder *strings.Builder, details []types.ScoreDetail) {
	builder.WriteString("## Matched Rules\n\n")
	builder.WriteString("| Pattern | Kind | Matched | Weight |\n")
	builder.WriteString("|---------|------|---------|-------:|\n")
	for _, d := range details {
		builder.WriteString(fmt.Sprintf("| `%s` | %s | `%s` | %+d |\n", d.Pattern, d.Kind, d.Subject, d.Weight))
	}
	builder.WriteString("\n")
}

// write sends the rendered markdown to the output file or stdout.
func (f *MarkdownFormatter) write(content string) error {
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}
