package models

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func tagsServer(t *testing.T, models ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"models":[`)
		for i, m := range models {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"name":%q,"model":%q,"size":815319791}`, m, m)
		}
		fmt.Fprint(w, `]}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestInstalledModels(t *testing.T) {
	server := tagsServer(t, "llama3:8b", "gemma3:1b")

	lister := NewLister(server.URL)
	installed, err := lister.InstalledModels(context.Background())
	if err != nil {
		t.Fatalf("InstalledModels failed: %v", err)
	}

	expected := []string{"gemma3:1b", "llama3:8b"}
	if !reflect.DeepEqual(installed, expected) {
		t.Errorf("InstalledModels() = %v, want %v", installed, expected)
	}
}

func TestInstalledModels_Empty(t *testing.T) {
	server := tagsServer(t)

	lister := NewLister(server.URL)
	installed, err := lister.InstalledModels(context.Background())
	if err != nil {
		t.Fatalf("InstalledModels failed: %v", err)
	}
	if len(installed) != 0 {
		t.Errorf("Expected no models, got %v", installed)
	}
}

func TestInstalledModels_Unreachable(t *testing.T) {
	lister := NewLister("http://127.0.0.1:1")
	if _, err := lister.InstalledModels(context.Background()); err == nil {
		t.Error("Expected error for unreachable service")
	}
}

func TestHasModel(t *testing.T) {
	server := tagsServer(t, "gemma3:1b", "llama3:8b")
	lister := NewLister(server.URL)

	tests := []struct {
		model    string
		expected bool
	}{
		{"gemma3:1b", true},
		{"gemma3", true}, // untagged name matches any tag
		{"llama3:8b", true},
		{"llama3:70b", false},
		{"mistral", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			has, err := lister.HasModel(context.Background(), tt.model)
			if err != nil {
				t.Fatalf("HasModel failed: %v", err)
			}
			if has != tt.expected {
				t.Errorf("HasModel(%q) = %v, want %v", tt.model, has, tt.expected)
			}
		})
	}
}
