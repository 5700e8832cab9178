package scoring

import (
	"path/filepath"
)

// CandidateName returns the name a directory is scored under: its base name,
// except the filesystem root, which scores under the empty string so the
// default "" penalty applies to it.
func CandidateName(dir string) string {
	if filepath.Dir(dir) == dir {
		return ""
	}
	return filepath.Base(dir)
}

// AncestorNames returns the names of every proper ancestor of dir, closest
// first, ending with the filesystem root's empty name. The directory itself
// is excluded.
func AncestorNames(dir string) []string {
	var names []string
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		names = append(names, CandidateName(dir))
	}
	return names
}
