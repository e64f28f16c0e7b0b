package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

const (
	fnReconcile  = "bookkeeper-ai-reconcile"
	fnDetectGaps = "bookkeeper-detect-gaps"
	fnSmartMatch = "bookkeeper-ai-smart-match"
)

// Client implements port.Matcher against the hosted reconciliation gateway.
// All matching and scoring happens server-side; the client only ships state
// and decodes the structured results envelope.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a gateway client from matcher configuration.
func NewClient(cfg *config.MatcherConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom base URL (for testing).
func NewClientWithBaseURL(cfg *config.MatcherConfig, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Reconcile(ctx context.Context, req *port.ReconcileRequest) (*port.ReconcileResults, error) {
	var results port.ReconcileResults
	if err := c.invoke(ctx, fnReconcile, req, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *Client) DetectGaps(ctx context.Context, req *port.GapRequest) (*port.GapResults, error) {
	var results port.GapResults
	if err := c.invoke(ctx, fnDetectGaps, req, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *Client) SmartMatch(ctx context.Context, req *port.SmartMatchRequest) (*port.SmartMatchResults, error) {
	var results port.SmartMatchResults
	if err := c.invoke(ctx, fnSmartMatch, req, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// resultsEnvelope models the gateway's response wrapper.
type resultsEnvelope struct {
	Results json.RawMessage `json:"results"`
}

func (c *Client) invoke(ctx context.Context, function string, body, results interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", function, err)
	}

	url := c.baseURL + "/" + function
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", function, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w: %w", function, domain.ErrMatcherUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", function, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %w", domain.ErrMatcherUnavailable, &StatusError{
			Function:   function,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), 500),
		})
	}

	var envelope resultsEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("unmarshaling %s response: %w", function, err)
	}
	if len(envelope.Results) == 0 {
		return fmt.Errorf("%s response missing results", function)
	}
	if err := json.Unmarshal(envelope.Results, results); err != nil {
		return fmt.Errorf("unmarshaling %s results: %w", function, err)
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
