package screentime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	// Screenshots arrive as PNG or JPEG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/folio-tools/folio-api/pkg/models/domain"
)

// Engine is the optical-character-recognition collaborator. Progress, when
// non-nil, is called with values in [0,1] as recognition advances.
type Engine interface {
	Recognize(ctx context.Context, img []byte, progress func(float64)) (string, error)
}

// MaxUploadBytes caps uploaded screenshots at 10MB.
const MaxUploadBytes = 10 << 20

var (
	ErrNotImage       = errors.New("Please upload an image file (PNG, JPG, etc.)")
	ErrTooLarge       = errors.New("Image is too large. Please upload a file under 10MB.")
	ErrNotPortrait    = errors.New("Please upload a portrait screenshot from your phone's Screen Time settings.")
	ErrTooSmall       = errors.New("Image is too small. Please upload a full-resolution screenshot.")
	ErrBadAspectRatio = errors.New("This doesn't look like a phone screenshot. Please upload your Screen Time screenshot from Settings.")
	ErrNotScreenTime  = errors.New("This doesn't appear to be a Screen Time screenshot. Please upload your Screen Time data from Settings.")
	ErrNoEngine       = errors.New("no OCR engine configured")
)

// ParseFailedError reports that text was recognized but no apps could be
// extracted from it; Preview carries the head of the OCR output so the
// user can see what was actually read.
type ParseFailedError struct {
	Preview string
}

func (e *ParseFailedError) Error() string {
	return fmt.Sprintf("Could not read app data. OCR read: %q", e.Preview)
}

// Pipeline runs an uploaded screenshot through validation, recognition and
// parsing. Every invocation operates on fresh, independently owned data;
// there is no shared state between concurrent uploads.
type Pipeline struct {
	engine Engine
	parser *Parser
}

func NewPipeline(engine Engine, parser *Parser) *Pipeline {
	return &Pipeline{engine: engine, parser: parser}
}

// ValidateImage checks the upload is a decodable, phone-screenshot-shaped
// image. Typical phone screenshots are portrait with an aspect ratio
// between 1.5 and 2.5.
func ValidateImage(img []byte) error {
	if len(img) > MaxUploadBytes {
		return ErrTooLarge
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return ErrNotImage
	}
	if cfg.Height <= cfg.Width {
		return ErrNotPortrait
	}
	if cfg.Width < 300 || cfg.Height < 400 {
		return ErrTooSmall
	}
	aspect := float64(cfg.Height) / float64(cfg.Width)
	if aspect < 1.5 || aspect > 2.5 {
		return ErrBadAspectRatio
	}
	return nil
}

// Process validates the screenshot, recognizes its text and parses the
// usage data out of it.
func (p *Pipeline) Process(ctx context.Context, img []byte) ([]domain.UsageCategory, error) {
	if err := ValidateImage(img); err != nil {
		return nil, err
	}
	if p.engine == nil {
		return nil, ErrNoEngine
	}

	text, err := p.engine.Recognize(ctx, img, nil)
	if err != nil {
		return nil, fmt.Errorf("recognize screenshot: %w", err)
	}
	return p.ProcessText(ctx, text)
}

// ProcessText validates and parses already-recognized text, for clients
// that run OCR on device.
func (p *Pipeline) ProcessText(ctx context.Context, text string) ([]domain.UsageCategory, error) {
	if !LooksLikeScreenTime(text) {
		return nil, ErrNotScreenTime
	}
	categories := p.parser.Parse(ctx, text)
	if len(categories) == 0 {
		return nil, &ParseFailedError{Preview: textPreview(text, 200)}
	}
	return categories, nil
}

// textPreview truncates to n runes, not bytes, so the preview stays
// valid UTF-8 inside the JSON error body.
func textPreview(text string, n int) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if runes := []rune(flat); len(runes) > n {
		flat = string(runes[:n])
	}
	return flat
}
