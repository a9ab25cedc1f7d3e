package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	libraryhandler "github.com/folio-tools/folio-api/pkg/handlers/library"
	receipthandler "github.com/folio-tools/folio-api/pkg/handlers/receipt"
	suggestionhandler "github.com/folio-tools/folio-api/pkg/handlers/suggestion"
	foliomiddleware "github.com/folio-tools/folio-api/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Generator   receipthandler.Generator
	Pipeline    receipthandler.Pipeline
	Books       libraryhandler.BookLister
	Projects    libraryhandler.ProjectGetter
	Suggestions suggestionhandler.Submitter
	Logger      zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

const defaultShutdownTimeout = 10 * time.Second

// ConfigureRouter builds the API router. Split out of NewWebAPI so tests
// can exercise the mux without binding a listener.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	logger := deps.Logger
	receiptHandler := receipthandler.NewHandler(deps.Generator, deps.Pipeline)
	libraryHandler := libraryhandler.NewHandler(deps.Books, deps.Projects)
	suggestionHandler := suggestionhandler.NewHandler(deps.Suggestions)

	router := chi.NewRouter()

	router.Use(foliomiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/receipts", receiptHandler.GenerateReceipt)
		r.Post("/receipts/parse", receiptHandler.ParseReceipt)
		r.Post("/receipts/upload", receiptHandler.UploadReceipt)
		r.Get("/library/books", libraryHandler.ListBooks)
		r.Get("/projects/{slug}", libraryHandler.GetProject)
		r.Post("/suggestions", suggestionHandler.SubmitSuggestion)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
