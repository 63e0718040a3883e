package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"transcript-search/internal/handlers"
	"transcript-search/internal/service"
	"transcript-search/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	IngestService service.IngestService
	VectorStore   vectorstore.VectorStore
	DB            handlers.Pinger
	Collection    string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	ingestHandler := handlers.NewIngestHandler(deps.IngestService)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.DB, deps.Collection)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/channels/{channelID}/embeddings", ingestHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
