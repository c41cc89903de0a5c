package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func relPaths(entries []FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, filepath.ToSlash(e.RelPath))
	}
	return paths
}

func TestFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "readme_en.md"))
	writeFile(t, filepath.Join(tmpDir, "docs", "guide.txt"))
	writeFile(t, filepath.Join(tmpDir, "docs", "nested", "notes.txt"))

	entries, err := Files(tmpDir)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	expected := map[string]bool{
		"readme_en.md":          true,
		"docs/guide.txt":        true,
		"docs/nested/notes.txt": true,
	}
	for _, rel := range relPaths(entries) {
		if !expected[rel] {
			t.Errorf("Unexpected entry: %s", rel)
		}
	}

	for _, entry := range entries {
		if _, err := os.Stat(entry.AbsPath); err != nil {
			t.Errorf("AbsPath %s not readable: %v", entry.AbsPath, err)
		}
	}
}

func TestFiles_EmptyDirectory(t *testing.T) {
	entries, err := Files(t.TempDir())
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestFiles_NonexistentDirectory(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for nonexistent directory")
	}
}

func TestFilter(t *testing.T) {
	entries := []FileEntry{
		{RelPath: "readme_en.md"},
		{RelPath: filepath.Join("docs", "guide.txt")},
		{RelPath: filepath.Join("docs", "notes.txt")},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns selects everything",
			patterns: nil,
			want:     []string{"readme_en.md", "docs/guide.txt", "docs/notes.txt"},
		},
		{
			name:     "exact path",
			patterns: []string{"docs/guide.txt"},
			want:     []string{"docs/guide.txt"},
		},
		{
			name:     "glob pattern",
			patterns: []string{"docs/*.txt"},
			want:     []string{"docs/guide.txt", "docs/notes.txt"},
		},
		{
			name:     "no match",
			patterns: []string{"missing.txt"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := Filter(entries, tt.patterns)
			if err != nil {
				t.Fatalf("Filter failed: %v", err)
			}
			got := relPaths(selected)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d entries, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Entry %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	entries := []FileEntry{{RelPath: "a.txt"}}
	_, err := Filter(entries, []string{"[unclosed"})
	if err == nil {
		t.Error("Expected error for invalid pattern")
	}
}
