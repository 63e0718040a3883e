package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"transcript-search/internal/contextutil"
	"transcript-search/internal/vectorstore"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	vectorStore        vectorstore.VectorStore
	pinger             Pinger
	collectionName     string
	healthCheckTimeout time.Duration
}

// Pinger checks a dependency's connectivity. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler creates a new HealthHandler. db may be nil.
func NewHealthHandler(vectorStore vectorstore.VectorStore, db Pinger, collectionName string) *HealthHandler {
	return &HealthHandler{
		vectorStore:        vectorStore,
		pinger:             db,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is not healthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when the database and vector store are reachable. A missing
// collection only degrades the status since ingestion creates it on demand.
// An unreachable dependency returns 503 Service Unavailable.
//
// swagger:route GET /api/health healthCheck
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string
	degraded, unhealthy := false, false

	if h.pinger != nil {
		if err := h.pinger.PingContext(checkCtx); err != nil {
			logger.WarnContext(ctx, "database health check failed", "error", err)
			checks["database"] = "error"
			issues = append(issues, "database_unavailable")
			unhealthy = true
		} else {
			checks["database"] = "ok"
		}
	}

	switch h.checkVectorStore(checkCtx, logger) {
	case vectorStoreOK:
		checks["vector_store"] = "ok"
	case vectorStoreNoCollection:
		checks["vector_store"] = "no_collection"
		issues = append(issues, "collection_missing")
		degraded = true
	default:
		checks["vector_store"] = "error"
		issues = append(issues, "vector_store_unavailable")
		unhealthy = true
	}

	status := "healthy"
	httpStatus := http.StatusOK
	switch {
	case unhealthy:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case degraded:
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

type vectorStoreState int

const (
	vectorStoreOK vectorStoreState = iota
	vectorStoreNoCollection
	vectorStoreUnavailable
)

// checkVectorStore checks if the vector store is accessible.
func (h *HealthHandler) checkVectorStore(ctx context.Context, logger *slog.Logger) vectorStoreState {
	exists, err := h.vectorStore.CollectionExists(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		return vectorStoreUnavailable
	}
	if !exists {
		logger.WarnContext(ctx, "vector store collection does not exist", "collection", h.collectionName)
		return vectorStoreNoCollection
	}
	return vectorStoreOK
}
