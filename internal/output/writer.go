package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveTranslation writes translated text into the run directory,
// preserving the source file's relative subdirectory. The filename gets
// its language code rewritten to the target language; if the resulting
// path already exists a _1, _2, ... suffix is inserted before the
// extension until a free name is found. Returns the path written.
func SaveTranslation(runDir, relPath, translated, targetLang string) (string, error) {
	relDir, file := filepath.Split(relPath)
	newName := RewriteLanguageCode(file, targetLang)

	outputDir := filepath.Join(runDir, relDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output subdirectory: %w", err)
	}

	outputPath := filepath.Join(outputDir, newName)
	ext := filepath.Ext(newName)
	stem := strings.TrimSuffix(newName, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			break
		}
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	if err := os.WriteFile(outputPath, []byte(translated), 0644); err != nil {
		return "", fmt.Errorf("failed to write translated file: %w", err)
	}
	return outputPath, nil
}
