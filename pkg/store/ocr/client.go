package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to a self-hosted OCR service that wraps a recognition
// engine behind a small HTTP API. Recognition is slow; the timeout is
// generous and calls are expected to be awaited one at a time.
type Client struct {
	http *resty.Client
	lang string
}

type ClientOption func(*Client)

func WithLanguage(lang string) ClientOption {
	return func(c *Client) { c.lang = lang }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(2 * time.Minute),
		lang: "eng",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type recognizeRequest struct {
	Image    string `json:"image"` // base64-encoded
	Language string `json:"language"`
}

type recognizeResponse struct {
	Text string `json:"text"`
}

// Recognize submits the image and returns the recognized text. The
// service does not stream progress, so the callback is invoked once on
// completion when provided.
func (c *Client) Recognize(ctx context.Context, img []byte, progress func(float64)) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(recognizeRequest{
			Image:    base64.StdEncoding.EncodeToString(img),
			Language: c.lang,
		}).
		SetResult(&recognizeResponse{}).
		Post("/recognize")
	if err != nil {
		return "", fmt.Errorf("ocr recognize: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("ocr recognize: %s", resp.Status())
	}
	if progress != nil {
		progress(1)
	}
	return resp.Result().(*recognizeResponse).Text, nil
}
