package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public datasets server.
	DefaultBaseURL = "https://datasets-server.huggingface.co"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxPageSize is the largest page the rows endpoint serves.
	// It is also the default.
	MaxPageSize = 100

	// MaxRetries is the maximum number of retries per page after a
	// rate limit response.
	MaxRetries = 3
)

// Client wraps the datasets server REST API with rate limiting.
type Client struct {
	http        *http.Client
	baseURL     string
	rateLimiter *RateLimiter
}

// NewClient creates a datasets server client. The token authenticates
// against gated datasets and may be empty.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		http:        httpClient,
		baseURL:     cfg.BaseURL,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// rowsResponse is the /rows endpoint response format.
type rowsResponse struct {
	Rows []struct {
		RowIdx int        `json:"row_idx"`
		Row    datasetRow `json:"row"`
	} `json:"rows"`
	NumRowsTotal   int  `json:"num_rows_total"`
	NumRowsPerPage int  `json:"num_rows_per_page"`
	Partial        bool `json:"partial"`
}

// datasetRow carries the row fields the corpus is built from.
// Question and answer columns exist in the dataset but are not read.
type datasetRow struct {
	Context      string `json:"context"`
	ContextID    string `json:"context_id"`
	ContextTitle string `json:"context_title"`
	URL          string `json:"url"`
}

// isValidResponse is the /is-valid endpoint response format.
type isValidResponse struct {
	Viewer  bool `json:"viewer"`
	Preview bool `json:"preview"`
}

// Rows fetches one page of rows from a split.
func (c *Client) Rows(ctx context.Context, dataset, config, split string, offset, length int) (*rowsResponse, error) {
	query := url.Values{}
	query.Set("dataset", dataset)
	query.Set("config", config)
	query.Set("split", split)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("length", strconv.Itoa(length))

	var out rowsResponse
	if err := c.getJSON(ctx, "/rows", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsValid reports whether the server can serve the dataset.
func (c *Client) IsValid(ctx context.Context, dataset string) (bool, error) {
	query := url.Values{}
	query.Set("dataset", dataset)

	var out isValidResponse
	if err := c.getJSON(ctx, "/is-valid", query, &out); err != nil {
		return false, err
	}
	return out.Viewer || out.Preview, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// getJSON performs a rate-limited GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path+"?"+query.Encode(),
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(body),
			URL:        req.URL.String(),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
