package models

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

// Lister queries the local model service for installed models
type Lister struct {
	host       string
	httpClient *http.Client
}

// NewLister creates a new model lister for the given service host
func NewLister(host string) *Lister {
	return &Lister{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// tagsResponse represents the /api/tags response structure
type tagsResponse struct {
	Models []modelTag `json:"models"`
}

type modelTag struct {
	Name       string    `json:"name"`
	Model      string    `json:"model"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
}

// InstalledModels returns the names of all models installed on the
// local service, sorted alphabetically.
func (l *Lister) InstalledModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.host+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model service unreachable at %s: %w", l.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to parse model list: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names, nil
}

// HasModel reports whether the named model is installed. Model names
// without a tag match any tag of that model (gemma3 matches gemma3:1b).
func (l *Lister) HasModel(ctx context.Context, model string) (bool, error) {
	installed, err := l.InstalledModels(ctx)
	if err != nil {
		return false, err
	}

	for _, name := range installed {
		if name == model {
			return true, nil
		}
		if !strings.Contains(model, ":") && strings.HasPrefix(name, model+":") {
			return true, nil
		}
	}
	return false, nil
}

// PrintAvailableModels lists installed models on stdout
func (l *Lister) PrintAvailableModels(ctx context.Context) error {
	installed, err := l.InstalledModels(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Installed models:")
	if len(installed) == 0 {
		fmt.Println("  No models installed")
		return nil
	}
	for _, name := range installed {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
