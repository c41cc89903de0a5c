// Package batch reads selection files restricting which input files a
// run translates.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadSelectionFile reads patterns from a file, one per line. Supports:
//   - exact relative paths: "docs/guide_en.md"
//   - glob patterns: "docs/*.md"
//   - blank lines and lines starting with '#' are ignored
func ReadSelectionFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	return patterns, nil
}
