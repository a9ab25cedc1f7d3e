package resend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.resend.com"

// Client sends transactional email through the Resend API.
type Client struct {
	http *resty.Client
}

type ClientOption func(*Client)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.http.SetBaseURL(base) }
}

func NewClient(apiKey string, opts ...ClientOption) *Client {
	httpClient := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(15 * time.Second)

	c := &Client{http: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Send delivers one email and returns the provider's message ID.
func (c *Client) Send(ctx context.Context, email Email) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    email.From,
			To:      []string{email.To},
			Subject: email.Subject,
			HTML:    email.HTML,
		}).
		SetResult(&sendResponse{}).
		SetError(&errorResponse{}).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*errorResponse); ok && apiErr.Message != "" {
			return "", fmt.Errorf("send email: %s", apiErr.Message)
		}
		return "", fmt.Errorf("send email: %s", resp.Status())
	}
	return resp.Result().(*sendResponse).ID, nil
}
