package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the LiftPlan REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// state lives on the remote server (accessed over Tailscale). The server
// resolves the user from the connection, so userID parameters are not sent.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	return c.do(req, path)
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *HTTPClient) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

var errNotFound = fmt.Errorf("httpclient: not found")

func (c *HTTPClient) CreateProgram(ctx context.Context, userID int, prefs engine.UserPreferences) (uuid.UUID, *engine.GeneratedProgram, error) {
	body, err := c.post(ctx, "/api/v1/programs", prefs)
	if err != nil {
		return uuid.Nil, nil, err
	}

	var resp struct {
		ID      uuid.UUID                `json:"id"`
		Program *engine.GeneratedProgram `json:"program"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return uuid.Nil, nil, fmt.Errorf("httpclient: decode program: %w", err)
	}
	return resp.ID, resp.Program, nil
}

func (c *HTTPClient) GetProgram(ctx context.Context, id uuid.UUID, userID int) (*storage.ProgramRecord, error) {
	body, err := c.get(ctx, "/api/v1/programs/"+id.String(), nil)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec storage.ProgramRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("httpclient: decode program: %w", err)
	}
	return &rec, nil
}

func (c *HTTPClient) ListPrograms(ctx context.Context, userID, limit int) ([]storage.ProgramRecord, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, "/api/v1/programs", params)
	if err != nil {
		return nil, err
	}

	var records []storage.ProgramRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode programs: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) StartingWeights(ctx context.Context, userID int, refs []engine.ExerciseRef, age int, gender catalog.Gender) ([]engine.ExerciseWeight, error) {
	req := map[string]any{"exercises": refs}
	if age > 0 {
		req["age"] = age
	}
	if gender != "" {
		req["gender"] = gender
	}

	body, err := c.post(ctx, "/api/v1/starting-weights", req)
	if err != nil {
		return nil, err
	}

	var weights []engine.ExerciseWeight
	if err := json.Unmarshal(body, &weights); err != nil {
		return nil, fmt.Errorf("httpclient: decode weights: %w", err)
	}
	return weights, nil
}

func (c *HTTPClient) Progression(ctx context.Context, userID int, d engine.ExerciseData) (*engine.ProgressionResult, error) {
	body, err := c.post(ctx, "/api/v1/progression", d)
	if err != nil {
		return nil, err
	}

	var res engine.ProgressionResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("httpclient: decode progression: %w", err)
	}
	return &res, nil
}

func (c *HTTPClient) ProgressionLog(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]storage.ProgressionRow, error) {
	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", end.Format(time.RFC3339))
	if exerciseFilter != "" {
		params.Set("exercise", exerciseFilter)
	}

	body, err := c.get(ctx, "/api/v1/progression/log", params)
	if err != nil {
		return nil, err
	}

	var rows []storage.ProgressionRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode progression log: %w", err)
	}
	return rows, nil
}
