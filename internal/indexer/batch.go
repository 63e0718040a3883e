package indexer

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"transcript-search/internal/llm"
)

// DefaultEmbeddingBatchSize is the number of texts per embedding request.
const DefaultEmbeddingBatchSize = 100

// writeBatchDivisor keeps store writes well below the store's hard ceiling.
const writeBatchDivisor = 5

// embeddingBatches yields one vector per text, in input order, issuing one
// provider request per batchSize texts. Each range over the sequence starts
// from the first batch again. Iteration stops at the first error.
func embeddingBatches(ctx context.Context, embedder llm.Embedder, texts []string, batchSize int) iter.Seq2[[]float32, error] {
	return func(yield func([]float32, error) bool) {
		for start := 0; start < len(texts); start += batchSize {
			end := min(start+batchSize, len(texts))

			batch := make([]string, 0, end-start)
			for _, text := range texts[start:end] {
				batch = append(batch, strings.ReplaceAll(text, "\n", " "))
			}

			vectors, err := embedder.EmbedTexts(ctx, batch)
			if err == nil && len(vectors) != len(batch) {
				err = fmt.Errorf("%w: expected %d embeddings, got %d", llm.ErrProvider, len(batch), len(vectors))
			}
			if err != nil {
				yield(nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err))
				return
			}

			for _, vec := range vectors {
				if !yield(vec, nil) {
					return
				}
			}
		}
	}
}

// writeBatchSize returns the number of records per store write for a store
// whose ceiling is maxBatchSize.
func writeBatchSize(maxBatchSize int) int {
	return max(1, maxBatchSize/writeBatchDivisor)
}

// requestCount returns ceil(n/batchSize).
func requestCount(n, batchSize int) int {
	return (n + batchSize - 1) / batchSize
}
