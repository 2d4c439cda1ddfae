package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
)

// httpClient is a shared HTTP client with connection pooling; one per process.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Client calls the database-query endpoint of the content workspace API.
type Client struct {
	BaseURL string // override for tests; defaults to the public API host
	Token   string
}

func NewClient(token string) *Client {
	return &Client{BaseURL: defaultBaseURL, Token: token}
}

// Query is the request body for a database query.
type Query struct {
	Filter *Filter `json:"filter,omitempty"`
	Sorts  []Sort  `json:"sorts,omitempty"`
}

// Filter matches pages whose select property equals a value.
type Filter struct {
	Property string       `json:"property"`
	Select   SelectEquals `json:"select"`
}

type SelectEquals struct {
	Equals string `json:"equals"`
}

// Sort orders results by a page timestamp.
type Sort struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

// SelectEqualsFilter builds the one filter shape the listings need.
func SelectEqualsFilter(property, value string) *Filter {
	return &Filter{Property: property, Select: SelectEquals{Equals: value}}
}

// CreatedAscending sorts by page creation time, oldest first.
func CreatedAscending() []Sort {
	return []Sort{{Timestamp: "created_time", Direction: "ascending"}}
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryDatabase runs one query against a database and returns its pages.
// Cursor pagination is not followed; the listings this serves stay well under
// one page of results.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q Query) ([]Page, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.BaseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("database query failed (%d %s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("database query failed: status %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out.Results, nil
}
