package vectorstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"transcript-search/internal/contextutil"
)

const (
	milvusIDField        = "id"
	milvusDocumentField  = "document"
	milvusEmbeddingField = "embedding"
)

// milvusMetaFields lists the varchar metadata columns in schema order.
var milvusMetaFields = []string{"channel_id", "channel_name", "video_id", "video_title", "video_date", "start_time"}

// MilvusStore implements VectorStore using Milvus.
type MilvusStore struct {
	client       client.Client
	maxBatchSize int
}

// NewMilvusStore connects to Milvus at address (e.g. "localhost:19530").
func NewMilvusStore(ctx context.Context, address string, maxBatchSize int) (*MilvusStore, error) {
	if maxBatchSize <= 0 {
		return nil, fmt.Errorf("max batch size must be greater than 0")
	}

	c, err := client.NewGrpcClient(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Milvus: %w", err)
	}

	return &MilvusStore{
		client:       c,
		maxBatchSize: maxBatchSize,
	}, nil
}

// MaxBatchSize returns the configured upper bound on records per Add call.
func (m *MilvusStore) MaxBatchSize() int {
	return m.maxBatchSize
}

// CollectionExists checks if a collection exists.
func (m *MilvusStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	has, err := m.client.HasCollection(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection existence: %w", err)
	}
	return has, nil
}

// EnsureCollection creates the segment collection with an HNSW index if it
// doesn't exist, otherwise validates the embedding dimension.
func (m *MilvusStore) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	has, err := m.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}

	if has {
		coll, err := m.client.DescribeCollection(ctx, collection)
		if err != nil {
			return fmt.Errorf("failed to describe collection: %w", err)
		}
		dim, err := embeddingDim(coll.Schema)
		if err != nil {
			return err
		}
		if dim != vectorSize {
			return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, dim)
		}
		return m.client.LoadCollection(ctx, collection, false)
	}

	logger.InfoContext(ctx, "creating collection", "collection", collection, "vector_size", vectorSize)
	if err := m.client.CreateCollection(ctx, segmentSchema(collection, vectorSize), entity.DefaultShardNumber); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	idx, err := entity.NewIndexHNSW(entity.COSINE, 16, 256)
	if err != nil {
		return fmt.Errorf("failed to create index config: %w", err)
	}
	if err := m.client.CreateIndex(ctx, collection, milvusEmbeddingField, idx, false); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if err := m.client.LoadCollection(ctx, collection, false); err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	return nil
}

// segmentSchema defines the segment collection: a client-assigned UUID
// primary key, the document, its embedding and the metadata columns.
func segmentSchema(collection string, vectorSize int) *entity.Schema {
	fields := []*entity.Field{
		{
			Name:       milvusIDField,
			DataType:   entity.FieldTypeVarChar,
			PrimaryKey: true,
			AutoID:     false,
			TypeParams: map[string]string{"max_length": "64"},
		},
		{
			Name:       milvusDocumentField,
			DataType:   entity.FieldTypeVarChar,
			TypeParams: map[string]string{"max_length": "65535"},
		},
		{
			Name:       milvusEmbeddingField,
			DataType:   entity.FieldTypeFloatVector,
			TypeParams: map[string]string{"dim": strconv.Itoa(vectorSize)},
		},
	}
	for _, name := range milvusMetaFields {
		fields = append(fields, &entity.Field{
			Name:       name,
			DataType:   entity.FieldTypeVarChar,
			TypeParams: map[string]string{"max_length": "1024"},
		})
	}

	return &entity.Schema{
		CollectionName: collection,
		Description:    "subtitle segment embeddings",
		AutoID:         false,
		Fields:         fields,
	}
}

// embeddingDim reads the vector dimension from an existing schema.
func embeddingDim(schema *entity.Schema) (int, error) {
	if schema == nil {
		return 0, fmt.Errorf("collection schema is invalid")
	}
	for _, field := range schema.Fields {
		if field.Name != milvusEmbeddingField {
			continue
		}
		dim, err := strconv.Atoi(field.TypeParams["dim"])
		if err != nil {
			return 0, fmt.Errorf("could not determine collection vector size: %w", err)
		}
		return dim, nil
	}
	return 0, fmt.Errorf("collection has no %s field", milvusEmbeddingField)
}

// Add inserts records column-wise and flushes the collection.
func (m *MilvusStore) Add(ctx context.Context, collection string, records []Record) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(records) == 0 {
		return nil
	}
	if len(records) > m.maxBatchSize {
		return fmt.Errorf("%w: batch of %d exceeds max batch size %d", ErrInvalidRecord, len(records), m.maxBatchSize)
	}

	columns, err := recordColumns(records)
	if err != nil {
		return err
	}

	if _, err := m.client.Insert(ctx, collection, "", columns...); err != nil {
		logger.ErrorContext(ctx, "failed to insert records", "collection", collection, "count", len(records), "error", err)
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	if err := m.client.Flush(ctx, collection, false); err != nil {
		return fmt.Errorf("%w: failed to flush data: %w", ErrStoreWrite, err)
	}

	logger.DebugContext(ctx, "inserted records", "collection", collection, "count", len(records))
	return nil
}

// recordColumns builds aligned columns for a batch of records.
// Every vector must have the same dimension.
func recordColumns(records []Record) ([]entity.Column, error) {
	dim := len(records[0].Vec)
	if dim == 0 {
		return nil, fmt.Errorf("%w: record %s has an empty vector", ErrInvalidRecord, records[0].ID)
	}

	ids := make([]string, len(records))
	documents := make([]string, len(records))
	vectors := make([][]float32, len(records))
	meta := make([][]string, len(milvusMetaFields))
	for i := range meta {
		meta[i] = make([]string, len(records))
	}

	for i, record := range records {
		if len(record.Vec) != dim {
			return nil, fmt.Errorf("%w: record %s has dimension %d, expected %d", ErrInvalidRecord, record.ID, len(record.Vec), dim)
		}
		ids[i] = record.ID
		documents[i] = record.Document
		vectors[i] = record.Vec

		values := record.Meta.Map()
		for j, name := range milvusMetaFields {
			meta[j][i], _ = values[name].(string)
		}
	}

	columns := []entity.Column{
		entity.NewColumnVarChar(milvusIDField, ids),
		entity.NewColumnVarChar(milvusDocumentField, documents),
		entity.NewColumnFloatVector(milvusEmbeddingField, dim, vectors),
	}
	for j, name := range milvusMetaFields {
		columns = append(columns, entity.NewColumnVarChar(name, meta[j]))
	}

	return columns, nil
}

// DeleteByChannel removes every record of a channel.
func (m *MilvusStore) DeleteByChannel(ctx context.Context, collection string, channelID string) error {
	expr := fmt.Sprintf(`channel_id == "%s"`, strings.ReplaceAll(channelID, `"`, `\"`))
	if err := m.client.Delete(ctx, collection, "", expr); err != nil {
		return fmt.Errorf("%w: failed to delete channel records: %w", ErrStoreWrite, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "deleted channel records", "collection", collection, "channel_id", channelID)
	return nil
}

// Close releases resources and closes the Milvus connection.
func (m *MilvusStore) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}
