package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// FileEntry describes one file found under the input directory
type FileEntry struct {
	// RelPath is the path relative to the input directory, using the
	// platform separator. It determines where the translated file lands
	// inside the run directory.
	RelPath string
	// AbsPath is the absolute (or input-relative) path used for reading.
	AbsPath string
}

// Files recursively collects all regular files under inputDir in walk
// order. An empty result is not an error.
func Files(inputDir string) ([]FileEntry, error) {
	var entries []FileEntry

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{RelPath: rel, AbsPath: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	return entries, nil
}

// Filter returns the entries whose relative path matches at least one of
// the given patterns. Patterns use filepath.Match syntax; a pattern
// without wildcards matches as an exact relative path. Invalid patterns
// are reported as errors.
func Filter(entries []FileEntry, patterns []string) ([]FileEntry, error) {
	if len(patterns) == 0 {
		return entries, nil
	}

	var selected []FileEntry
	for _, entry := range entries {
		matched, err := matchesAny(entry.RelPath, patterns)
		if err != nil {
			return nil, err
		}
		if matched {
			selected = append(selected, entry)
		}
	}
	return selected, nil
}

func matchesAny(relPath string, patterns []string) (bool, error) {
	// Normalize to slashes so batch files written on any platform match.
	slashPath := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if pattern == slashPath {
			return true, nil
		}
		matched, err := filepath.Match(pattern, slashPath)
		if err != nil {
			return false, fmt.Errorf("invalid selection pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
