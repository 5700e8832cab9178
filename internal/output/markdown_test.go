package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/projroot/internal/types"
)

func TestMarkdownFormatResult(t *testing.T) {
	file := filepath.Join(t.TempDir(), "report.md")
	formatter := NewMarkdownFormatter(file)

	if err := formatter.FormatResult(sampleResult(), nil); err != nil {
		t.Fatalf("FormatResult failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"# Projroot Report",
		"## Candidates",
		"| `/work/project` | 45 | ** |",
		"| `/work/project/src` | -100 |  |",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q\n%s", want, content)
		}
	}
}

func TestMarkdownFormatDetails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "score.md")
	formatter := NewMarkdownFormatter(file)

	details := []types.ScoreDetail{
		{Pattern: "node_modules", Kind: types.KindName, Subject: "node_modules", Weight: -100},
	}
	if err := formatter.FormatDetails("/work/node_modules", -100, details); err != nil {
		t.Fatalf("FormatDetails failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "| `node_modules` | name | `node_modules` | -100 |") {
		t.Errorf("details table missing matched rule row:\n%s", data)
	}
}

func TestMarkdownFormatScanEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scan.md")
	formatter := NewMarkdownFormatter(file)

	if err := formatter.FormatScan("/work", nil); err != nil {
		t.Fatalf("FormatScan failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No project roots found.") {
		t.Errorf("empty scan should say so:\n%s", data)
	}
}
