// Package searchapi is a thin client for the external web-search provider.
// It signs, sends and relays; query shaping belongs to the caller.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Params struct {
	Query  string
	Count  int
	Offset int
	// Freshness restricts result age, e.g. "pm" for the past month.
	// Empty means no restriction.
	Freshness string
}

// APIError is a non-success response from the provider, with its body
// preserved for server-side logging.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search provider returned %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WebSearch forwards the query and returns the provider payload verbatim.
func (c *Client) WebSearch(ctx context.Context, p Params) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("q", p.Query)
	if p.Count > 0 {
		q.Set("count", strconv.Itoa(p.Count))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Freshness != "" {
		q.Set("freshness", p.Freshness)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/web/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return json.RawMessage(body), nil
}
