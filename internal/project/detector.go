// Package project selects the best-scoring project root for a start path.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/dotcommander/projroot/internal/scoring"
	"github.com/dotcommander/projroot/internal/types"
)

// FindProjectRoot scores the start directory and every one of its ancestors
// and returns the best candidate. The start path is made absolute (a fatal
// error if that fails) and symlink-resolved on a best-effort basis, so a
// nonexistent start still scores its ancestors.
//
// Selection keeps the first candidate, walking closest to farthest, whose
// score strictly exceeds the best so far. Ties therefore go to the candidate
// closest to the start, and the start itself wins when nothing outscores it.
func FindProjectRoot(startPath string, scorer *scoring.Scorer) (*types.Result, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve start path %q: %w", startPath, err)
	}
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	result := &types.Result{Start: absPath}

	winner := 0
	for i, dir := range Candidates(absPath) {
		score := scorer.Score(dir)
		result.Candidates = append(result.Candidates, types.Candidate{Path: dir, Score: score})
		if score > result.Candidates[winner].Score {
			winner = i
		}
	}

	result.Candidates[winner].Winner = true
	result.Root = result.Candidates[winner].Path
	result.Score = result.Candidates[winner].Score
	return result, nil
}

// Candidates returns the directory itself plus every ancestor up to and
// including the filesystem root, closest first.
func Candidates(absPath string) []string {
	candidates := []string{absPath}
	currentDir := absPath
	for {
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
		candidates = append(candidates, currentDir)
	}
	return candidates
}
