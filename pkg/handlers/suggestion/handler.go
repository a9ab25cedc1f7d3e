package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-tools/folio-api/pkg/models/api"
	"github.com/folio-tools/folio-api/pkg/services/suggestion"
	"github.com/folio-tools/folio-api/pkg/store/sanity"
	"github.com/rs/zerolog"
)

// Submitter records a suggestion and notifies the curator.
type Submitter interface {
	Submit(ctx context.Context, bookTitle string) (suggestion.Result, error)
}

type Handler struct {
	svc Submitter
}

func NewHandler(svc Submitter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) SubmitSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookTitle == "" {
		respondError(w, http.StatusBadRequest, api.Error{Error: "Book title is required"})
		return
	}

	result, err := h.svc.Submit(ctx, req.BookTitle)
	if err != nil {
		switch {
		case errors.Is(err, suggestion.ErrEmptyTitle):
			respondError(w, http.StatusBadRequest, api.Error{Error: "Book title is required"})
		case errors.Is(err, sanity.ErrNoToken):
			respondError(w, http.StatusInternalServerError, api.Error{Error: "Missing SANITY_WRITE_TOKEN"})
		default:
			logger.Error().Err(err).Msg("failed to store suggestion")
			respondError(w, http.StatusInternalServerError, api.Error{
				Error:   "Failed to save to database",
				Details: err.Error(),
			})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(api.SuggestionResponse{
		Success:  true,
		SanityID: result.SanityID,
		EmailID:  result.EmailID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode suggestion response")
	}
}

func respondError(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
