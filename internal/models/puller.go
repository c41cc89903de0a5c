package models

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Puller downloads models onto the local service
type Puller struct {
	host       string
	httpClient *http.Client
}

// NewPuller creates a new model puller for the given service host.
// Pulls stream for as long as the download takes, so no client timeout
// is set; cancellation runs through the context.
func NewPuller(host string) *Puller {
	return &Puller{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: &http.Client{},
	}
}

// pullStatus is one line of the streamed /api/pull response
type pullStatus struct {
	Status    string `json:"status"`
	Digest    string `json:"digest"`
	Total     int64  `json:"total"`
	Completed int64  `json:"completed"`
	Error     string `json:"error"`
}

// Pull downloads the named model, printing streamed progress status
// lines to stdout.
func (p *Puller) Pull(ctx context.Context, model string) error {
	body, err := json.Marshal(map[string]string{"model": model})
	if err != nil {
		return fmt.Errorf("failed to marshal pull request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("model service unreachable at %s: %w", p.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pull of %q failed with status %d", model, resp.StatusCode)
	}

	lastStatus := ""
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var status pullStatus
		if err := json.Unmarshal(scanner.Bytes(), &status); err != nil {
			continue // tolerate partial stream lines
		}
		if status.Error != "" {
			return fmt.Errorf("pull of %q failed: %s", model, status.Error)
		}
		if status.Status != "" && status.Status != lastStatus {
			fmt.Printf("  %s\n", status.Status)
			lastStatus = status.Status
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pull stream interrupted: %w", err)
	}

	return nil
}

// EnsureModel verifies the model is installed, pulling it when missing
// and autoPull is set. Without autoPull a missing model is an error
// that lists what is installed.
func EnsureModel(ctx context.Context, host, model string, autoPull bool) error {
	lister := NewLister(host)

	has, err := lister.HasModel(ctx, model)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	if !autoPull {
		installed, err := lister.InstalledModels(ctx)
		if err != nil {
			return err
		}
		return fmt.Errorf("model %q is not installed (installed: %s); pull it with 'ollama pull %s' or pass --pull",
			model, strings.Join(installed, ", "), model)
	}

	fmt.Printf("Model %q not found, pulling...\n", model)
	if err := NewPuller(host).Pull(ctx, model); err != nil {
		return err
	}
	fmt.Printf("Model %q pulled successfully\n", model)
	return nil
}
