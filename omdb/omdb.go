// Package omdb is a client for the OMDb movie database API. The API key
// stays server-side; responses are returned as raw JSON so the proxy layer
// can forward them verbatim.
package omdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://www.omdbapi.com"

// defaultTimeout is the blanket client-side request timeout.
const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an OMDb client. baseURL and client may be zero values,
// in which case the public endpoint and a timeout-bounded default client
// are used.
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// Search queries movies by title. Pages below 1 are clamped to 1.
func (c *Client) Search(ctx context.Context, query string, page int) ([]byte, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("type", "movie")

	return c.get(ctx, params)
}

// MovieByID fetches full-plot detail for one title by IMDb ID.
func (c *Client) MovieByID(ctx context.Context, imdbID string) ([]byte, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	return c.get(ctx, params)
}

// get performs the request with the API key attached and returns the body
// verbatim. OMDb reports its own lookup failures inside a 200 response
// (Response: "False"), which is data, not an error.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	fullURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from OMDb", resp.StatusCode)
	}

	return body, nil
}
