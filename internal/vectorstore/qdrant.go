package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"transcript-search/internal/contextutil"
)

// documentKey is the payload field holding the raw segment text.
const documentKey = "document"

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client       *qdrant.Client
	maxBatchSize int
}

// NewQdrantStore creates a new Qdrant vector store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) will be derived from the HTTP port.
// maxBatchSize is the ceiling reported by MaxBatchSize.
func NewQdrantStore(urlStr string, maxBatchSize int) (*QdrantStore, error) {
	host, port, err := grpcAddress(urlStr)
	if err != nil {
		return nil, err
	}
	if maxBatchSize <= 0 {
		return nil, fmt.Errorf("max batch size must be greater than 0")
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:       client,
		maxBatchSize: maxBatchSize,
	}, nil
}

// grpcAddress derives the Qdrant gRPC host and port from its HTTP URL.
func grpcAddress(urlStr string) (string, int, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	return host, port, nil
}

// MaxBatchSize returns the configured upper bound on records per Add call.
func (s *QdrantStore) MaxBatchSize() int {
	return s.maxBatchSize
}

// Add writes records as points. The document text is stored in the payload.
func (s *QdrantStore) Add(ctx context.Context, collection string, records []Record) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(records) == 0 {
		return nil
	}
	if len(records) > s.maxBatchSize {
		return fmt.Errorf("%w: batch of %d exceeds max batch size %d", ErrInvalidRecord, len(records), s.maxBatchSize)
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(true),
		Points:         pointsFromRecords(records),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to add points", "collection", collection, "count", len(records), "error", err)
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	logger.DebugContext(ctx, "added points", "collection", collection, "count", len(records))
	return nil
}

// pointsFromRecords converts records to Qdrant points with metadata and document payload.
func pointsFromRecords(records []Record) []*qdrant.PointStruct {
	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, record := range records {
		payload := record.Meta.Map()
		payload[documentKey] = record.Document

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(record.ID),
			Vectors: qdrant.NewVectors(record.Vec...),
			Payload: qdrant.NewValueMap(payload),
		})
	}
	return points
}

// DeleteByChannel removes all points whose channel_id payload matches.
func (s *QdrantStore) DeleteByChannel(ctx context.Context, collection string, channelID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(true),
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("channel_id", channelID),
			},
		}),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete channel points", "collection", collection, "channel_id", channelID, "error", err)
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	logger.InfoContext(ctx, "deleted channel points", "collection", collection, "channel_id", channelID)
	return nil
}

// CollectionExists checks if a collection exists.
func (s *QdrantStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection existence: %w", err)
	}
	return exists, nil
}

// EnsureCollection ensures a collection exists with the specified vector size.
// If the collection exists, validates that the vector size matches.
// If it doesn't exist, creates it with the specified vector size.
func (s *QdrantStore) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	var actualSize uint64
	if config := info.GetConfig(); config != nil && config.GetParams() != nil {
		if params := config.GetParams().GetVectorsConfig().GetParams(); params != nil {
			actualSize = params.GetSize()
		}
	}
	if actualSize == 0 {
		return fmt.Errorf("could not determine collection vector size")
	}
	if int(actualSize) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, actualSize)
	}

	logger.DebugContext(ctx, "collection validated", "collection", collection, "vector_size", vectorSize)
	return nil
}

// Close closes the gRPC connection.
func (s *QdrantStore) Close() error {
	return s.client.Close()
}
