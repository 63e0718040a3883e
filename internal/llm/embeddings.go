package llm

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks transcript-search/internal/llm Embedder

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	// ErrProvider is returned when the embedding provider request fails.
	ErrProvider = errors.New("embedding provider error")
	// ErrEmptyInput is returned when EmbedTexts is called without texts.
	ErrEmptyInput = errors.New("empty input array")
)

// Embedder generates one embedding per input text, in input order.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ModelConfig holds the embedding model and the credentials to reach it.
type ModelConfig struct {
	EmbeddingModel string
	APIKey         string
	BaseURL        string // OpenAI-compatible base URL, e.g. "https://api.openai.com/v1"
}

// EmbeddingsClient is a client for OpenAI-compatible embeddings APIs.
type EmbeddingsClient struct {
	Model        string
	ExpectedSize int // Expected vector size for validation, 0 disables the check
	client       openai.Client
}

// NewEmbeddingsClient creates a new embeddings client.
// Extra request options are appended after the ones derived from cfg.
func NewEmbeddingsClient(cfg ModelConfig, expectedSize int, opts ...option.RequestOption) *EmbeddingsClient {
	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &EmbeddingsClient{
		Model:        cfg.EmbeddingModel,
		ExpectedSize: expectedSize,
		client:       openai.NewClient(clientOpts...),
	}
}

// EmbedTexts generates embeddings for the given texts.
// The result has the same length and order as texts.
func (c *EmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model:          c.Model,
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", ErrProvider, len(texts), len(resp.Data))
	}

	// Place each vector by its response index, converting []float64 to []float32
	result := make([][]float32, len(texts))
	for _, data := range resp.Data {
		idx := int(data.Index)
		if idx < 0 || idx >= len(texts) || result[idx] != nil {
			return nil, fmt.Errorf("%w: invalid or duplicate embedding index %d", ErrProvider, data.Index)
		}
		if c.ExpectedSize > 0 && len(data.Embedding) != c.ExpectedSize {
			return nil, fmt.Errorf("%w: embedding %d has size %d, expected %d", ErrProvider, idx, len(data.Embedding), c.ExpectedSize)
		}

		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		result[idx] = vec
	}

	return result, nil
}
