// Package scoring evaluates compiled pattern rules against real directories.
//
// A directory's score is the sum of three independent parts: name rules
// matched against its own base name, parent rules matched against each
// ancestor's base name, and child rules matched against its immediate
// entries. Scores are computed per directory with no shared state, so the
// same directory always scores the same within a run.
package scoring

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/dotcommander/projroot/internal/logging"
	"github.com/dotcommander/projroot/internal/pattern"
	"github.com/dotcommander/projroot/internal/types"
)

// Scorer scores directories against a compiled rule set. The rule set is
// read-only and safe to share.
type Scorer struct {
	rules *pattern.Set
	log   zerolog.Logger
}

// NewScorer creates a Scorer over the given rule set.
func NewScorer(rules *pattern.Set) *Scorer {
	return &Scorer{
		rules: rules,
		log:   logging.GetLogger("scoring"),
	}
}

// Score returns the total score for one absolute directory path.
func (s *Scorer) Score(dir string) int {
	total, _ := s.score(dir, false)
	return total
}

// ScoreDetailed returns the total score plus one breakdown row per rule
// that fired, in rule order within each part (name, parent, child).
func (s *Scorer) ScoreDetailed(dir string) (int, []types.ScoreDetail) {
	return s.score(dir, true)
}

func (s *Scorer) score(dir string, detailed bool) (int, []types.ScoreDetail) {
	var total int
	var details []types.ScoreDetail

	record := func(r pattern.Rule, subject string) {
		total += r.Weight
		if detailed {
			details = append(details, types.ScoreDetail{
				Pattern: r.Pattern,
				Kind:    r.Kind.String(),
				Subject: subject,
				Weight:  r.Weight,
			})
		}
	}

	// Self name: the final path segment, or "" for the filesystem root.
	name := CandidateName(dir)
	for _, r := range s.rules.Name {
		if r.Match(name) {
			record(r, name)
		}
	}

	// Ancestry: each proper ancestor's name is matched individually, and a
	// rule contributes once per ancestor it matches.
	for _, ancestor := range AncestorNames(dir) {
		for _, r := range s.rules.Parent {
			if r.Match(ancestor) {
				record(r, ancestor+"/")
			}
		}
	}

	// Children: one directory listing per candidate. A listing failure is
	// recoverable and contributes zero; entry kind is not distinguished.
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Debug().Err(err).Str("dir", dir).Msg("cannot list children")
	}
	for _, entry := range entries {
		for _, r := range s.rules.Child {
			if r.Match(entry.Name()) {
				record(r, "./"+entry.Name())
			}
		}
	}

	return total, details
}
