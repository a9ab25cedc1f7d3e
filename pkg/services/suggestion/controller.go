package suggestion

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/store/resend"
	"github.com/rs/zerolog"
)

// StoreWriter is the write surface of the content store.
type StoreWriter interface {
	Create(ctx context.Context, doc any) (string, error)
}

// Mailer delivers the curator notification.
type Mailer interface {
	Send(ctx context.Context, email resend.Email) (string, error)
}

var ErrEmptyTitle = errors.New("book title is required")

const defaultFrom = "Library <onboarding@resend.dev>"

var emailTemplate = template.Must(template.New("suggestion").Parse(`
<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333; margin-bottom: 16px;">New Book Suggestion!</h2>
  <p style="color: #666; font-size: 16px; line-height: 1.5;">
    Someone suggested a new book for your library:
  </p>
  <div style="background: #f5f5f5; border-radius: 8px; padding: 16px; margin: 16px 0;">
    <p style="color: #333; font-size: 18px; font-weight: 500; margin: 0;">
      &quot;{{.Title}}&quot;
    </p>
  </div>
  <p style="color: #999; font-size: 14px; margin-top: 24px;">
    Submitted via the library page
  </p>
</div>
`))

type suggestionDoc struct {
	Type        string `json:"_type"`
	BookTitle   string `json:"bookTitle"`
	SubmittedAt string `json:"submittedAt"`
	Status      string `json:"status"`
}

// Result carries the IDs assigned by the two downstream services. EmailID
// is empty when notification delivery failed; that failure is logged, not
// surfaced, because the suggestion is already durably stored.
type Result struct {
	SanityID string
	EmailID  string
}

// Controller records book suggestions in the content store and notifies
// the curator by email.
type Controller struct {
	store  StoreWriter
	mailer Mailer
	from   string
	to     string
	clock  func() time.Time
}

type ControllerOption func(*Controller)

func WithClock(clock func() time.Time) ControllerOption {
	return func(c *Controller) { c.clock = clock }
}

func NewController(store StoreWriter, mailer Mailer, emailCfg domain.EmailConfig, opts ...ControllerOption) *Controller {
	from := emailCfg.From
	if from == "" {
		from = defaultFrom
	}
	c := &Controller{
		store:  store,
		mailer: mailer,
		from:   from,
		to:     emailCfg.To,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit trims and stores the suggestion, then sends the notification.
// The store write is the source of truth: its failure fails the request,
// while an email failure only loses the heads-up.
func (c *Controller) Submit(ctx context.Context, bookTitle string) (Result, error) {
	logger := zerolog.Ctx(ctx)

	title := strings.TrimSpace(bookTitle)
	if title == "" {
		return Result{}, ErrEmptyTitle
	}

	doc := suggestionDoc{
		Type:        "bookSuggestion",
		BookTitle:   title,
		SubmittedAt: c.clock().UTC().Format(time.RFC3339),
		Status:      string(domain.SuggestionStatusNew),
	}

	id, err := c.store.Create(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("store suggestion: %w", err)
	}

	result := Result{SanityID: id}

	var body strings.Builder
	if err := emailTemplate.Execute(&body, struct{ Title string }{Title: title}); err != nil {
		logger.Error().Err(err).Msg("failed to render suggestion email")
		return result, nil
	}

	emailID, err := c.mailer.Send(ctx, resend.Email{
		From:    c.from,
		To:      c.to,
		Subject: fmt.Sprintf("New Book Suggestion: %s", title),
		HTML:    body.String(),
	})
	if err != nil {
		logger.Error().Err(err).Str("title", title).Msg("suggestion notification email failed")
		return result, nil
	}

	result.EmailID = emailID
	return result, nil
}
