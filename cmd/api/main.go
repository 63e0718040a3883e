package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transcript-search/internal/app"
	"transcript-search/internal/config"
	"transcript-search/internal/http"
	"transcript-search/internal/service"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API builds the semantic search index of YouTube channel transcripts.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Transcript Search API
//   description: |
//     Segments stored subtitles into fixed time windows, embeds them with an
//     OpenAI-compatible provider and writes the vectors to Qdrant or Milvus.
//   version: 1.0.0
// schemes:
//   - http
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	app.SetupLogging(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		_ = a.Close()
	}()

	// Validate embedding model and vector size (fail-fast)
	if err := a.Embedder.Validate(ctx); err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	slog.Info("Embedding client validated", "model", cfg.EmbeddingModelName, "vector_size", cfg.VectorSize)

	ingestService := service.NewIngestService(a.Pipeline(app.PipelineOverrides{}))

	router := http.NewRouter(&http.Deps{
		IngestService: ingestService,
		VectorStore:   a.VectorStore,
		DB:            a.DB,
		Collection:    cfg.VectorCollection,
	})

	// Ingestion runs synchronously inside the request, so no write timeout.
	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", server.Addr)
	slog.Debug("Embedding configuration", "base_url", cfg.EmbeddingBaseURL, "model", cfg.EmbeddingModelName, "vector_size", cfg.VectorSize)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
