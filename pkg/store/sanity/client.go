package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/go-resty/resty/v2"
)

// ErrNoToken is returned by write operations when the client was built
// without a write token.
var ErrNoToken = errors.New("content store write token is not configured")

// Client is a thin wrapper over the content store's HTTP API: GROQ query
// reads, document creation, and CDN image URL building.
type Client struct {
	http *resty.Client
	cfg  domain.ContentStoreConfig
}

type ClientOption func(*Client)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.http.SetBaseURL(base) }
}

func NewClient(cfg domain.ContentStoreConfig, opts ...ClientOption) *Client {
	host := fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	if cfg.UseCDN {
		host = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
	}

	httpClient := resty.New().
		SetBaseURL(host).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	c := &Client{http: httpClient, cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
	Message string `json:"message"`
}

// Query runs a GROQ query and unmarshals the result into result. params
// are passed as $-prefixed query parameters, JSON-encoded per the API
// contract.
func (c *Client) Query(ctx context.Context, groq string, params map[string]string, result any) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", groq).
		SetResult(&queryResponse{}).
		SetError(&errorResponse{})
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", name, err)
		}
		req.SetQueryParam("$"+name, string(encoded))
	}

	resp, err := req.Get(fmt.Sprintf("/%s/data/query/%s", c.cfg.APIVersion, c.cfg.Dataset))
	if err != nil {
		return fmt.Errorf("content store query: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("content store query: %s", apiErrorMessage(resp))
	}

	raw := resp.Result().(*queryResponse).Result
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

type mutateRequest struct {
	Mutations []map[string]any `json:"mutations"`
}

type mutateResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// Create writes a new document and returns its assigned ID.
func (c *Client) Create(ctx context.Context, doc any) (string, error) {
	if c.cfg.Token == "" {
		return "", ErrNoToken
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("returnIds", "true").
		SetBody(mutateRequest{Mutations: []map[string]any{{"create": doc}}}).
		SetResult(&mutateResponse{}).
		SetError(&errorResponse{}).
		Post(fmt.Sprintf("/%s/data/mutate/%s", c.cfg.APIVersion, c.cfg.Dataset))
	if err != nil {
		return "", fmt.Errorf("content store create: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("content store create: %s", apiErrorMessage(resp))
	}

	results := resp.Result().(*mutateResponse).Results
	if len(results) == 0 {
		return "", fmt.Errorf("content store create: no results in response")
	}
	return results[0].ID, nil
}

// ImageURL builds a CDN URL for an image asset reference of the form
// "image-<id>-<WxH>-<format>". Width 0 omits the resize; auto-format and
// quality 75 are always applied to keep payloads small.
func (c *Client) ImageURL(ref string, width int) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("invalid image reference %q", ref)
	}

	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.cfg.ProjectID, c.cfg.Dataset, parts[1], parts[2], parts[3])

	q := url.Values{}
	q.Set("auto", "format")
	q.Set("q", "75")
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	return base + "?" + q.Encode(), nil
}

func apiErrorMessage(resp *resty.Response) string {
	if apiErr, ok := resp.Error().(*errorResponse); ok {
		if apiErr.Error.Description != "" {
			return apiErr.Error.Description
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return resp.Status()
}
