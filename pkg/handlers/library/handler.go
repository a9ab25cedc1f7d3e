package library

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-tools/folio-api/pkg/adapters"
	"github.com/folio-tools/folio-api/pkg/models/api"
	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/project"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type BookLister interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

type ProjectGetter interface {
	GetProject(ctx context.Context, slug string) (domain.Project, error)
}

type Handler struct {
	books    BookLister
	projects ProjectGetter
}

func NewHandler(books BookLister, projects ProjectGetter) *Handler {
	return &Handler{books: books, projects: projects}
}

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	books, err := h.books.ListBooks(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list books")
		respondError(w, http.StatusInternalServerError, api.Error{Error: "Failed to load library"})
		return
	}

	response := make([]api.Book, 0, len(books))
	for _, book := range books {
		response = append(response, adapters.MapDomainBookToAPI(book))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode books")
	}
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	slug := chi.URLParam(r, "slug")

	proj, err := h.projects.GetProject(ctx, slug)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondError(w, http.StatusNotFound, api.Error{Error: "Project not found"})
			return
		}
		logger.Error().Err(err).Str("slug", slug).Msg("failed to get project")
		respondError(w, http.StatusInternalServerError, api.Error{Error: "Failed to load project"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDomainProjectToAPI(proj)); err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("failed to encode project")
	}
}

func respondError(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
