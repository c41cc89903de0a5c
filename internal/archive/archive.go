// Package archive moves finished run directories out of the base
// output directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveRuns moves all run_* directories under baseDir into a
// timestamped directory under baseDir/archive. Returns the archive
// path, or an empty string when there was nothing to archive.
func ArchiveRuns(baseDir string) (string, error) {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return "", fmt.Errorf("output directory does not exist: %s", baseDir)
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to read output directory: %w", err)
	}

	var runs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "run_") {
			runs = append(runs, entry.Name())
		}
	}
	if len(runs) == 0 {
		return "", nil
	}

	archivePath := filepath.Join(baseDir, "archive", fmt.Sprintf("runs-%s", time.Now().Format("20060102-150405")))
	if _, err := os.Stat(archivePath); err == nil {
		// Second archive within the same second
		archivePath = filepath.Join(baseDir, "archive", fmt.Sprintf("runs-%s", time.Now().Format("20060102-150405.000000")))
	}
	if err := os.MkdirAll(archivePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, run := range runs {
		src := filepath.Join(baseDir, run)
		dst := filepath.Join(archivePath, run)
		if err := os.Rename(src, dst); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", run, err)
		}
	}

	return archivePath, nil
}
