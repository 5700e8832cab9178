// Package types provides shared types used across the projroot codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Candidate is one scored directory: the start directory or one of its
// ancestors, or (in scan mode) any directory under the scanned tree.
type Candidate struct {
	Path   string `json:"path"`
	Score  int    `json:"score"`
	Winner bool   `json:"winner,omitempty"`
}

// Result is the outcome of a root search: the winning path, its score, and
// every evaluated candidate in closest-to-farthest order. The slice doubles
// as the candidate→score mapping; order is significant because the tie-break
// keeps the first (closest) candidate among equal top scores.
type Result struct {
	Start      string      `json:"start"`
	Root       string      `json:"root"`
	Score      int         `json:"score"`
	Candidates []Candidate `json:"candidates"`
}

// ScoreDetail is one breakdown row: a rule that fired during scoring, the
// subject it matched, and the weight it contributed.
type ScoreDetail struct {
	Pattern string `json:"pattern"`
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Weight  int    `json:"weight"`
}

// Pattern kind names as they appear in breakdowns and the weights listing.
const (
	KindChild  = "child"
	KindName   = "name"
	KindParent = "parent"
)

// Version is the tool version reported in output headers.
const Version = "1.0.0"

// Output format constants.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
