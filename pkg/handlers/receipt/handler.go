package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/folio-tools/folio-api/pkg/adapters"
	"github.com/folio-tools/folio-api/pkg/models/api"
	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/screentime"
	"github.com/rs/zerolog"
)

// Generator builds receipts from parsed or synthetic usage data.
type Generator interface {
	Generate(period domain.Period, parsed []domain.UsageCategory) domain.Receipt
}

// Pipeline turns uploaded screenshots or recognized text into usage
// categories.
type Pipeline interface {
	Process(ctx context.Context, img []byte) ([]domain.UsageCategory, error)
	ProcessText(ctx context.Context, text string) ([]domain.UsageCategory, error)
}

type Handler struct {
	generator Generator
	pipeline  Pipeline
}

func NewHandler(generator Generator, pipeline Pipeline) *Handler {
	return &Handler{generator: generator, pipeline: pipeline}
}

// GenerateReceipt produces a receipt from synthetic data for the
// requested period.
func (h *Handler) GenerateReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.GenerateReceiptRequest
	if r.Body != nil {
		// An empty body means a daily receipt; a malformed one is a 400.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(w, http.StatusBadRequest, api.Error{Error: "Invalid request body"})
			return
		}
	}

	period, ok := parsePeriod(req.Period)
	if !ok {
		respondError(w, http.StatusBadRequest, api.Error{Error: "period must be \"daily\" or \"weekly\""})
		return
	}

	receipt := h.generator.Generate(period, nil)
	respondReceipt(ctx, w, receipt)
}

// ParseReceipt builds a receipt from recognized text supplied by a client
// that ran OCR on device.
func (h *Handler) ParseReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ParseReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, api.Error{Error: "Invalid request body"})
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, api.Error{Error: "Recognized text is required"})
		return
	}
	period, ok := parsePeriod(req.Period)
	if !ok {
		respondError(w, http.StatusBadRequest, api.Error{Error: "period must be \"daily\" or \"weekly\""})
		return
	}

	categories, err := h.pipeline.ProcessText(ctx, req.Text)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	receipt := h.generator.Generate(period, categories)
	respondReceipt(ctx, w, receipt)
}

// UploadReceipt accepts a multipart screenshot upload, runs it through
// OCR and builds a receipt from whatever could be parsed.
func (h *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(screentime.MaxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, api.Error{Error: screentime.ErrTooLarge.Error()})
		return
	}

	period, ok := parsePeriod(r.FormValue("period"))
	if !ok {
		respondError(w, http.StatusBadRequest, api.Error{Error: "period must be \"daily\" or \"weekly\""})
		return
	}

	file, _, err := r.FormFile("screenshot")
	if err != nil {
		respondError(w, http.StatusBadRequest, api.Error{Error: "A screenshot file is required"})
		return
	}
	defer file.Close()

	img, err := io.ReadAll(io.LimitReader(file, screentime.MaxUploadBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, api.Error{Error: "Could not read the file. Please try again."})
		return
	}

	categories, err := h.pipeline.Process(ctx, img)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	receipt := h.generator.Generate(period, categories)
	respondReceipt(ctx, w, receipt)
}

func parsePeriod(raw string) (domain.Period, bool) {
	switch raw {
	case "", string(domain.PeriodDaily):
		return domain.PeriodDaily, true
	case string(domain.PeriodWeekly):
		return domain.PeriodWeekly, true
	}
	return "", false
}

// respondPipelineError maps pipeline failures onto the error taxonomy:
// bad uploads are 400s, low-confidence parses are 422s, and a missing
// OCR engine is a deployment problem.
func respondPipelineError(w http.ResponseWriter, err error) {
	var parseErr *screentime.ParseFailedError
	switch {
	case errors.Is(err, screentime.ErrNotImage),
		errors.Is(err, screentime.ErrTooLarge),
		errors.Is(err, screentime.ErrNotPortrait),
		errors.Is(err, screentime.ErrTooSmall),
		errors.Is(err, screentime.ErrBadAspectRatio):
		respondError(w, http.StatusBadRequest, api.Error{Error: err.Error()})
	case errors.Is(err, screentime.ErrNotScreenTime):
		respondError(w, http.StatusUnprocessableEntity, api.Error{Error: err.Error()})
	case errors.As(err, &parseErr):
		respondError(w, http.StatusUnprocessableEntity, api.Error{
			Error:   "Could not read app data",
			Details: parseErr.Preview,
		})
	case errors.Is(err, screentime.ErrNoEngine):
		respondError(w, http.StatusInternalServerError, api.Error{Error: "OCR engine is not configured"})
	default:
		respondError(w, http.StatusInternalServerError, api.Error{Error: "Failed to process screenshot. Please try again."})
	}
}

func respondReceipt(ctx context.Context, w http.ResponseWriter, receipt domain.Receipt) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDomainReceiptToAPI(receipt)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode receipt")
	}
}

func respondError(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
