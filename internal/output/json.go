package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/projroot/internal/types"
)

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header     JSONHeader          `json:"header"`
	Start      string              `json:"start,omitempty"`
	Root       string              `json:"root,omitempty"`
	Score      *int                `json:"score,omitempty"`
	Candidates []types.Candidate   `json:"candidates,omitempty"`
	Details    []types.ScoreDetail `json:"details,omitempty"`
	Roots      []types.Candidate   `json:"roots,omitempty"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// FormatResult emits the root search result, with optional breakdown rows.
func (f *JSONFormatter) FormatResult(result *types.Result, details []types.ScoreDetail) error {
	report := JSONReport{
		Header:     newHeader(),
		Start:      result.Start,
		Root:       result.Root,
		Score:      &result.Score,
		Candidates: result.Candidates,
		Details:    details,
	}
	return f.write(report)
}

// FormatDetails emits one directory's score and breakdown rows.
func (f *JSONFormatter) FormatDetails(dir string, score int, details []types.ScoreDetail) error {
	report := JSONReport{
		Header:  newHeader(),
		Root:    dir,
		Score:   &score,
		Details: details,
	}
	return f.write(report)
}

// FormatScan emits the probable roots found under a scanned tree.
func (f *JSONFormatter) FormatScan(start string, roots []types.Candidate) error {
	report := JSONReport{
		Header: newHeader(),
		Start:  start,
		Roots:  roots,
	}
	return f.write(report)
}

func newHeader() JSONHeader {
	return JSONHeader{
		Tool:      "projroot",
		Version:   types.Version,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// write marshals the report and sends it to the output file or stdout.
func (f *JSONFormatter) write(report JSONReport) error {
	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}
