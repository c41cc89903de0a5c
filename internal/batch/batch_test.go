package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadSelectionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.txt")
	content := `# translate only the docs
docs/guide_en.md

docs/*.txt
  readme.md
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	patterns, err := ReadSelectionFile(path)
	if err != nil {
		t.Fatalf("ReadSelectionFile failed: %v", err)
	}

	expected := []string{"docs/guide_en.md", "docs/*.txt", "readme.md"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Errorf("ReadSelectionFile() = %v, want %v", patterns, expected)
	}
}

func TestReadSelectionFile_WindowsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.txt")
	if err := os.WriteFile(path, []byte("a.txt\r\nb.txt\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	patterns, err := ReadSelectionFile(path)
	if err != nil {
		t.Fatalf("ReadSelectionFile failed: %v", err)
	}
	if !reflect.DeepEqual(patterns, []string{"a.txt", "b.txt"}) {
		t.Errorf("Unexpected patterns: %v", patterns)
	}
}

func TestReadSelectionFile_Missing(t *testing.T) {
	if _, err := ReadSelectionFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadSelectionFile_OnlyComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.txt")
	if err := os.WriteFile(path, []byte("# nothing\n\n# here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	patterns, err := ReadSelectionFile(path)
	if err != nil {
		t.Fatalf("ReadSelectionFile failed: %v", err)
	}
	if len(patterns) != 0 {
		t.Errorf("Expected no patterns, got %v", patterns)
	}
}
