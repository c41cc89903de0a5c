package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the metadata file written into each run directory.
const ManifestFileName = "run.yaml"

// Manifest records what a run did, for later inspection of the run
// directory without the log file.
type Manifest struct {
	TargetLanguage string    `yaml:"target_language"`
	Model          string    `yaml:"model"`
	InputDir       string    `yaml:"input_dir"`
	StartedAt      time.Time `yaml:"started_at"`
	FinishedAt     time.Time `yaml:"finished_at,omitempty"`
	TotalFiles     int       `yaml:"total_files"`
	Translated     int       `yaml:"translated"`
	FromCache      int       `yaml:"from_cache"`
	Errors         int       `yaml:"errors"`
}

// WriteManifest saves the manifest as run.yaml inside the run directory.
func WriteManifest(runDir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal run manifest: %w", err)
	}

	path := filepath.Join(runDir, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a run manifest from a run directory.
func ReadManifest(runDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(runDir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read run manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse run manifest: %w", err)
	}
	return &m, nil
}
