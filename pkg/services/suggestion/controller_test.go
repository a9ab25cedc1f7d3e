package suggestion

import (
	"context"
	"testing"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/store/resend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStoreWriter struct {
	mock.Mock
}

func (m *mockStoreWriter) Create(ctx context.Context, doc any) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, email resend.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func newTestController(store StoreWriter, mailer Mailer) *Controller {
	cfg := domain.EmailConfig{To: "curator@example.com"}
	return NewController(store, mailer, cfg, WithClock(fixedClock))
}

func TestSubmit(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	store.On("Create", mock.Anything, suggestionDoc{
		Type:        "bookSuggestion",
		BookTitle:   "Ficciones",
		SubmittedAt: "2026-08-31T12:00:00Z",
		Status:      "new",
	}).Return("doc-123", nil).Once()

	mailer.On("Send", mock.Anything, mock.MatchedBy(func(email resend.Email) bool {
		return email.From == defaultFrom &&
			email.To == "curator@example.com" &&
			email.Subject == "New Book Suggestion: Ficciones" &&
			len(email.HTML) > 0
	})).Return("email-456", nil).Once()

	ctrl := newTestController(store, mailer)
	result, err := ctrl.Submit(context.Background(), "Ficciones")

	require.NoError(t, err)
	assert.Equal(t, Result{SanityID: "doc-123", EmailID: "email-456"}, result)
	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSubmit_TrimsTitle(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	store.On("Create", mock.Anything, mock.MatchedBy(func(doc any) bool {
		return doc.(suggestionDoc).BookTitle == "Pedro Páramo"
	})).Return("doc-1", nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return("e-1", nil).Once()

	ctrl := newTestController(store, mailer)
	_, err := ctrl.Submit(context.Background(), "  Pedro Páramo  ")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSubmit_EmptyTitle(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	ctrl := newTestController(store, mailer)

	_, err := ctrl.Submit(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_StoreFailureFailsRequest(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	store.On("Create", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	ctrl := newTestController(store, mailer)
	_, err := ctrl.Submit(context.Background(), "Ficciones")

	assert.ErrorIs(t, err, assert.AnError)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmit_EmailFailureIsSwallowed(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	store.On("Create", mock.Anything, mock.Anything).Return("doc-123", nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	ctrl := newTestController(store, mailer)
	result, err := ctrl.Submit(context.Background(), "Ficciones")

	require.NoError(t, err)
	assert.Equal(t, "doc-123", result.SanityID)
	assert.Empty(t, result.EmailID)
}

func TestSubmit_EmailBodyNamesTheBook(t *testing.T) {
	store := new(mockStoreWriter)
	mailer := new(mockMailer)

	store.On("Create", mock.Anything, mock.Anything).Return("doc-1", nil).Once()

	var sent resend.Email
	mailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(resend.Email) }).
		Return("e-1", nil).Once()

	ctrl := newTestController(store, mailer)
	_, err := ctrl.Submit(context.Background(), "Ficciones")

	require.NoError(t, err)
	assert.Contains(t, sent.HTML, "&quot;Ficciones&quot;")
	assert.Contains(t, sent.HTML, "New Book Suggestion!")
}
