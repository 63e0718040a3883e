package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks transcript-search/internal/vectorstore VectorStore

import (
	"context"
	"errors"
)

var (
	// ErrStoreWrite is returned when a batch write to the vector store fails.
	ErrStoreWrite = errors.New("vector store write failed")
	// ErrInvalidRecord is returned when a record cannot be written as given.
	ErrInvalidRecord = errors.New("invalid record")
)

// Metadata is the searchable context stored with each segment embedding.
type Metadata struct {
	ChannelID   string
	ChannelName string
	VideoID     string
	VideoTitle  string
	VideoDate   string // YYYY-MM-DD
	StartTime   string // Original subtitle timestamp of the segment
}

// Map returns the metadata keyed by its payload field names.
func (m Metadata) Map() map[string]any {
	return map[string]any{
		"channel_id":   m.ChannelID,
		"channel_name": m.ChannelName,
		"video_id":     m.VideoID,
		"video_title":  m.VideoTitle,
		"video_date":   m.VideoDate,
		"start_time":   m.StartTime,
	}
}

// Record is one embedded segment: the raw document text, its vector and metadata.
type Record struct {
	ID       string // UUID
	Document string
	Vec      []float32
	Meta     Metadata
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// EnsureCollection creates the collection if missing and validates its vector size otherwise.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// Add writes records in a single request. Callers keep len(records) <= MaxBatchSize().
	Add(ctx context.Context, collection string, records []Record) error

	// DeleteByChannel removes every record whose channel_id matches.
	DeleteByChannel(ctx context.Context, collection string, channelID string) error

	// MaxBatchSize is the upper bound on records per Add call.
	MaxBatchSize() int

	// Close releases the underlying connection.
	Close() error
}
