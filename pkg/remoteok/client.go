package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL   = "https://remoteok.com"
	defaultUserAgent = "gradnex-gateway/1.0"
	defaultLimit     = 10
)

// NewClient instantiates a RemoteOK client; the feed needs no credentials
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		limit:      limit,
		limiter:    cfg.Limiter,
	}
}

// SearchJobs returns the newest listings tagged with tag. The feed's first
// element is a legal notice and is skipped.
func (c *Client) SearchJobs(ctx context.Context, tag string) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("remoteok: client is nil")
	}
	if strings.TrimSpace(tag) == "" {
		return nil, fmt.Errorf("remoteok: tag is required")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("remoteok: rate limit: %w", err)
		}
	}

	u := c.baseURL + "/api?tags=" + url.QueryEscape(tag)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("remoteok: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("remoteok: decode response: %w", err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	listings := raw[1:]
	if len(listings) > c.limit {
		listings = listings[:c.limit]
	}

	jobs := make([]Job, 0, len(listings))
	for i, item := range listings {
		var job Job
		if err := json.Unmarshal(item, &job); err != nil {
			return nil, fmt.Errorf("remoteok: decode listing %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
