package output

import (
	"testing"
	"time"
)

func TestManifestRoundTrip(t *testing.T) {
	runDir := t.TempDir()

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := &Manifest{
		TargetLanguage: "de",
		Model:          "gemma3:1b",
		InputDir:       "/tmp/docs",
		StartedAt:      started,
		FinishedAt:     started.Add(2 * time.Minute),
		TotalFiles:     10,
		Translated:     7,
		FromCache:      2,
		Errors:         1,
	}

	if err := WriteManifest(runDir, m); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	got, err := ReadManifest(runDir)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	if got.TargetLanguage != "de" || got.Model != "gemma3:1b" {
		t.Errorf("Unexpected manifest: %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
	if got.Translated != 7 || got.FromCache != 2 || got.Errors != 1 {
		t.Errorf("Unexpected counters: %+v", got)
	}
}

func TestReadManifest_Missing(t *testing.T) {
	if _, err := ReadManifest(t.TempDir()); err == nil {
		t.Error("Expected error for missing manifest")
	}
}
