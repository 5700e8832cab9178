// Package discovery walks a directory tree looking for probable project
// roots: directories whose heuristic score clears a threshold.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/dotcommander/projroot/internal/logging"
	"github.com/dotcommander/projroot/internal/scoring"
	"github.com/dotcommander/projroot/internal/types"
)

// Scanner walks a subtree and scores every directory in it.
type Scanner struct {
	rootPath string
	scorer   *scoring.Scorer
	excludes []string
	minScore int
	maxDepth int
	log      zerolog.Logger
}

// NewScanner creates a Scanner rooted at rootPath. Excludes are doublestar
// globs; a directory is pruned when a glob matches its slash-separated path
// relative to the root or its bare name, so a plain name like "node_modules"
// prunes at any depth. A maxDepth of zero means unlimited.
func NewScanner(rootPath string, scorer *scoring.Scorer, excludes []string, minScore, maxDepth int) *Scanner {
	return &Scanner{
		rootPath: rootPath,
		scorer:   scorer,
		excludes: excludes,
		minScore: minScore,
		maxDepth: maxDepth,
		log:      logging.GetLogger("discovery"),
	}
}

// Scan walks the tree and returns every directory scoring at least the
// minimum, sorted by score descending with path ascending on ties. Walk
// errors below the root are recoverable: the subtree is skipped and the
// scan continues.
func (s *Scanner) Scan() ([]types.Candidate, error) {
	absRoot, err := filepath.Abs(s.rootPath)
	if err != nil {
		return nil, err
	}

	var roots []types.Candidate
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			s.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if path != absRoot {
			if s.excluded(rel, d.Name()) {
				return filepath.SkipDir
			}
			if s.maxDepth > 0 && depthOf(rel) > s.maxDepth {
				return filepath.SkipDir
			}
		}

		if score := s.scorer.Score(path); score >= s.minScore {
			roots = append(roots, types.Candidate{Path: path, Score: score})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(roots, func(i, j int) bool {
		if roots[i].Score != roots[j].Score {
			return roots[i].Score > roots[j].Score
		}
		return roots[i].Path < roots[j].Path
	})
	return roots, nil
}

// excluded reports whether any exclude glob matches the directory's relative
// path or its bare name.
func (s *Scanner) excluded(rel, name string) bool {
	for _, pattern := range s.excludes {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// depthOf counts path components in a slash-separated relative path.
func depthOf(rel string) int {
	if rel == "." {
		return 0
	}
	depth := 1
	for _, c := range rel {
		if c == '/' {
			depth++
		}
	}
	return depth
}
