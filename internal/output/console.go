package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dotcommander/projroot/internal/types"
)

// ConsoleFormatter formats results for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	rel      bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose, rel bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		rel:      rel,
		colorize: true,
	}
}

// FormatResult prints the winning path, preceded in verbose mode by every
// candidate as "<marker> <score>: <path>" closest to farthest, the winner
// marked with "**".
func (f *ConsoleFormatter) FormatResult(result *types.Result) error {
	if f.verbose && !f.quiet {
		for _, c := range result.Candidates {
			marker := "  "
			if c.Winner {
				marker = "**"
			}
			line := truncate(fmt.Sprintf("%s %d: %s", marker, c.Score, c.Path), terminalWidth())
			if c.Winner && f.colorize {
				line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render(line)
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}

	fmt.Println(f.displayPath(result.Root))
	return nil
}

// FormatDetails prints one directory's score with a row per rule that fired.
func (f *ConsoleFormatter) FormatDetails(dir string, score int, details []types.ScoreDetail) error {
	if !f.quiet {
		for _, d := range details {
			weight := fmt.Sprintf("%+d", d.Weight)
			if f.colorize {
				color := lipgloss.Color("10") // green
				if d.Weight < 0 {
					color = lipgloss.Color("9") // red
				}
				weight = lipgloss.NewStyle().Foreground(color).Render(weight)
			}
			fmt.Printf("  %s %s %q matched %q\n", weight, d.Kind, d.Pattern, d.Subject)
		}
		if len(details) == 0 {
			fmt.Println("  no rules matched")
		}
	}

	fmt.Printf("%d: %s\n", score, f.displayPath(dir))
	return nil
}

// FormatScan prints probable roots as "<score>: <path>", best first.
func (f *ConsoleFormatter) FormatScan(roots []types.Candidate) error {
	if len(roots) == 0 {
		if !f.quiet {
			fmt.Println("no project roots found")
		}
		return nil
	}
	for _, r := range roots {
		fmt.Printf("%d: %s\n", r.Score, f.displayPath(r.Path))
	}
	return nil
}

// terminalWidth returns the terminal width, or zero when stderr is not a
// terminal, which disables truncation.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens a candidate line to the terminal width so verbose
// listings of deep paths stay one line each.
func truncate(line string, width int) string {
	if width <= 1 || len(line) <= width {
		return line
	}
	return line[:width-1] + "…"
}

// displayPath renders a path relative to the working directory when
// requested, falling back to the absolute path if that fails.
func (f *ConsoleFormatter) displayPath(path string) string {
	if !f.rel {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
