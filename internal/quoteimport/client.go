package quoteimport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// QuoteEntry is one quote as accepted by the pipeline quotes endpoint.
type QuoteEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Buying   string `json:"buying"`
	Selling  string `json:"selling"`
	QuotedAt string `json:"quoted_at,omitempty"` // RFC3339
}

// PipelineClient talks to the birikim pipeline API.
type PipelineClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewPipelineClient creates a new pipeline API client.
func NewPipelineClient(baseURL, apiKey string, httpClient *http.Client) *PipelineClient {
	return &PipelineClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// UpsertQuotes submits quotes and returns how many the API stored.
func (c *PipelineClient) UpsertQuotes(ctx context.Context, quotes []QuoteEntry) (int, error) {
	body := struct {
		Quotes []QuoteEntry `json:"quotes"`
	}{Quotes: quotes}

	var result struct {
		QuotesUpserted int `json:"quotes_upserted"`
	}
	if err := c.post(ctx, "/api/v1/pipeline/quotes", body, &result); err != nil {
		return 0, fmt.Errorf("upserting quotes: %w", err)
	}
	return result.QuotesUpserted, nil
}

// ComputeSnapshots triggers portfolio snapshot computation and returns the count recorded.
func (c *PipelineClient) ComputeSnapshots(ctx context.Context) (int, error) {
	body := struct {
		RecordedAt string `json:"recorded_at"`
	}{RecordedAt: time.Now().UTC().Format(time.RFC3339)}

	var result struct {
		SnapshotsRecorded int `json:"snapshots_recorded"`
	}
	if err := c.post(ctx, "/api/v1/pipeline/snapshots", body, &result); err != nil {
		return 0, fmt.Errorf("computing snapshots: %w", err)
	}
	return result.SnapshotsRecorded, nil
}

func (c *PipelineClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Code != "" {
			return fmt.Errorf("unexpected status %d: %s: %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
