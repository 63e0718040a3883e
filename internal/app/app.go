// Package app wires configuration into the storage, provider and vector
// store clients shared by the command entry points.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"transcript-search/internal/config"
	"transcript-search/internal/indexer"
	"transcript-search/internal/llm"
	"transcript-search/internal/storage"
	"transcript-search/internal/vectorstore"
)

// SetupLogging installs the default slog logger with the configured level and format.
func SetupLogging(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
	return logger
}

// OpenVectorStore connects to the backend selected by VECTOR_STORE.
func OpenVectorStore(ctx context.Context, cfg *config.Config) (vectorstore.VectorStore, error) {
	switch cfg.VectorStore {
	case config.VectorStoreQdrant:
		store, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.VectorMaxBatchSize)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.VectorStoreMilvus:
		store, err := vectorstore.NewMilvusStore(ctx, cfg.MilvusAddress, cfg.VectorMaxBatchSize)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported vector store %q", cfg.VectorStore)
	}
}

// App holds the long-lived clients of one process.
type App struct {
	DB          *sql.DB
	VectorStore vectorstore.VectorStore
	Embedder    *llm.EmbeddingsClient
	cfg         *config.Config
}

// New opens the subtitle database and connects the embedding provider and vector store.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.InfoContext(ctx, "Database initialized", "path", cfg.DBPath)

	store, err := OpenVectorStore(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create vector store client: %w", err)
	}
	slog.InfoContext(ctx, "Vector store client ready", "backend", cfg.VectorStore, "collection", cfg.VectorCollection)

	embedder := llm.NewEmbeddingsClient(llm.ModelConfig{
		EmbeddingModel: cfg.EmbeddingModelName,
		APIKey:         cfg.EmbeddingAPIKey,
		BaseURL:        cfg.EmbeddingBaseURL,
	}, cfg.VectorSize)

	return &App{
		DB:          db,
		VectorStore: store,
		Embedder:    embedder,
		cfg:         cfg,
	}, nil
}

// PipelineOverrides replaces configured ingestion settings when non-zero.
type PipelineOverrides struct {
	Interval           int
	EmbeddingBatchSize int
	Replace            bool
	Reporter           indexer.Reporter
}

// Pipeline builds an ingestion pipeline over the app's clients.
func (a *App) Pipeline(o PipelineOverrides) *indexer.Pipeline {
	opts := indexer.Options{
		Collection:         a.cfg.VectorCollection,
		VectorSize:         a.cfg.VectorSize,
		Interval:           a.cfg.SegmentInterval,
		EmbeddingBatchSize: a.cfg.EmbeddingBatchSize,
		Replace:            a.cfg.IngestReplace || o.Replace,
		Reporter:           o.Reporter,
	}
	if o.Interval > 0 {
		opts.Interval = o.Interval
	}
	if o.EmbeddingBatchSize > 0 {
		opts.EmbeddingBatchSize = o.EmbeddingBatchSize
	}

	return indexer.NewPipeline(
		storage.NewChannelRepo(a.DB),
		storage.NewVideoRepo(a.DB),
		storage.NewSubtitleRepo(a.DB),
		a.Embedder,
		a.VectorStore,
		opts,
	)
}

// Close releases the vector store connection and the database.
func (a *App) Close() error {
	return errors.Join(a.VectorStore.Close(), a.DB.Close())
}
