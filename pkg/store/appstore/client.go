package appstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://itunes.apple.com"

// Client looks up app artwork through the iTunes Search API. Results are
// cached per app name for the lifetime of the client, so each name costs
// at most one round trip per session.
type Client struct {
	http *resty.Client

	mu    sync.Mutex
	cache map[string]string
}

type ClientOption func(*Client)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.http.SetBaseURL(base) }
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(10 * time.Second),
		cache: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Results []struct {
		ArtworkURL512 string `json:"artworkUrl512"`
		ArtworkURL100 string `json:"artworkUrl100"`
		ArtworkURL60  string `json:"artworkUrl60"`
	} `json:"results"`
}

// Resolve returns the highest-resolution icon URL for the app, or an
// empty string when the search has no results. Misses are cached too.
func (c *Client) Resolve(ctx context.Context, appName string) (string, error) {
	c.mu.Lock()
	if cached, ok := c.cache[appName]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"term":   appName,
			"entity": "software",
			"limit":  "1",
		}).
		SetResult(&searchResponse{}).
		Get("/search")
	if err != nil {
		return "", fmt.Errorf("icon lookup for %s: %w", appName, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("icon lookup for %s: %s", appName, resp.Status())
	}

	iconURL := ""
	if results := resp.Result().(*searchResponse).Results; len(results) > 0 {
		switch {
		case results[0].ArtworkURL512 != "":
			iconURL = results[0].ArtworkURL512
		case results[0].ArtworkURL100 != "":
			iconURL = results[0].ArtworkURL100
		default:
			iconURL = results[0].ArtworkURL60
		}
	}

	c.mu.Lock()
	c.cache[appName] = iconURL
	c.mu.Unlock()
	return iconURL, nil
}
