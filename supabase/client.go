package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"prototype-creator/utils"
)

// Client issues authenticated REST calls against a Supabase project. Every
// request carries the fixed auth headers; failures are wrapped into plain
// errors carrying the status code and response body. No retries.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *utils.Logger
}

// NewClient creates a Supabase REST client for the given project URL and key.
func NewClient(baseURL, apiKey string, logger *utils.Logger) *Client {
	// Generous timeouts: html_content payloads can be large and the hosted
	// backend is sometimes slow to respond.
	client := &http.Client{
		Timeout: 120 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 60 * time.Second,
		},
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		logger:  logger,
	}
}

// Execute performs a single REST request and returns the raw response body.
// Request bodies are serialized to JSON. Non-2xx responses become errors
// that embed the status code and the body text.
func (c *Client) Execute(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	c.logger.Debug("Supabase request: %s %s", method, fullURL)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Supabase request failed: %s %s -> %d", method, fullURL, resp.StatusCode)
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(data))
	}

	return data, nil
}
