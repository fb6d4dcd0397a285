package logbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/claude/liftplan/internal/engine"
)

// syncEntry mirrors the server's sync payload entry without importing the
// server package (which would pull in chi and tsnet).
type syncEntry struct {
	engine.ExerciseData
	PerformedAt time.Time `json:"performed_at"`
}

// SyncResult is the server's response to a sync batch.
type SyncResult struct {
	Received int                        `json:"received"`
	Inserted int64                      `json:"inserted"`
	Results  []engine.ProgressionResult `json:"results"`
}

// Client sends logbook entries to the LiftPlan server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	login      string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the LiftPlan server.
func NewClient(serverURL, apiKey, login string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		login:     login,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Sync POSTs a batch of entries to the server's sync endpoint.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) Sync(entries []Entry) (*SyncResult, error) {
	payload := struct {
		Login   string      `json:"login"`
		Entries []syncEntry `json:"entries"`
	}{Login: c.login}
	for _, e := range entries {
		payload.Entries = append(payload.Entries, syncEntry{ExerciseData: e.Data, PerformedAt: e.PerformedAt})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling sync payload: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost, c.serverURL+"/api/v1/sync/progression", bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("creating sync request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			var result SyncResult
			if err := json.Unmarshal(body, &result); err != nil {
				return nil, fmt.Errorf("decoding sync response: %w", err)
			}
			return &result, nil
		}
		lastErr = fmt.Errorf("sync failed (status %d): %s", resp.StatusCode, body)
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}
