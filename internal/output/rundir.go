package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/polyglot/internal"
)

// CreateRunDirectory creates a unique run directory under baseDir and
// returns its path. Directories are named run_{name}_{N} where name is
// the custom run name (sanitized) or the target language, and N starts
// at the number of existing runs with that name plus one. N is bumped
// further while the candidate already exists, so deleting an older run
// never makes a later run land in a survivor's directory.
func CreateRunDirectory(baseDir, targetLang, runName string) (string, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := runName
	if name == "" {
		name = targetLang
	}
	name = internal.SanitizeRunName(name)

	prefix := fmt.Sprintf("run_%s_", name)
	count, err := countRuns(baseDir, prefix)
	if err != nil {
		return "", err
	}

	n := count + 1
	runDir := filepath.Join(baseDir, fmt.Sprintf("%s%d", prefix, n))
	for {
		if _, err := os.Stat(runDir); os.IsNotExist(err) {
			break
		}
		n++
		runDir = filepath.Join(baseDir, fmt.Sprintf("%s%d", prefix, n))
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return runDir, nil
}

func countRuns(baseDir, prefix string) (int, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			count++
		}
	}
	return count, nil
}
