// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package weather fetches the one-line weather summary shown in the status
// bar.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the fetch. The status bar would rather show nothing
// than stall the UI behind a slow endpoint.
const DefaultTimeout = 2 * time.Second

// maxBodySize caps how much of the response is read. The expected payload is
// one short line.
const maxBodySize = 4096

// Client fetches weather from a wttr.in-style plain text endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch returns the trimmed response body, like "⛅️ +7°C".
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build weather request: %w", err)
	}
	// wttr.in serves HTML unless the client looks like curl.
	req.Header.Set("User-Agent", "curl/8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather service returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read weather response: %w", err)
	}

	return strings.TrimSpace(string(body)), nil
}
