package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"transcript-search/internal/contextutil"
	"transcript-search/internal/indexer"
	"transcript-search/internal/service"
)

// IngestHandler handles HTTP requests that build a channel's embedding index.
type IngestHandler struct {
	ingestService service.IngestService
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingestService service.IngestService) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// IngestResponse is the ingestion summary returned to the caller.
type IngestResponse struct {
	*indexer.IngestStats
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Stats holds the work done before the failure, if any.
	Stats *indexer.IngestStats `json:"stats,omitempty"`
}

// ServeHTTP runs ingestion synchronously for the channel in the URL.
//
// swagger:route POST /api/channels/{channelID}/embeddings ingestChannel
//
// Segments, embeds and stores every subtitle of the channel.
//
// responses:
//
//	'200': IngestResponse
//	'400': ErrorResponse
//	'404': ErrorResponse
//	'502': ErrorResponse
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	channelID := chi.URLParam(r, "channelID")

	stats, err := h.ingestService.Ingest(ctx, service.IngestRequest{ChannelID: channelID})
	if err != nil {
		h.handleServiceError(ctx, w, err, stats)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(IngestResponse{IngestStats: stats}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to HTTP status codes.
func (h *IngestHandler) handleServiceError(ctx context.Context, w http.ResponseWriter, err error, stats *indexer.IngestStats) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()), nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input", stats)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Channel not found", nil)
	case errors.Is(err, service.ErrExternalService):
		writeError(w, http.StatusBadGateway, "Embedding provider or vector store failed", stats)
	default:
		writeError(w, http.StatusInternalServerError, "Failed to ingest channel", stats)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string, stats *indexer.IngestStats) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Stats: stats,
	})
}
