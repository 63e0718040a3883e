package service

import (
	"errors"
	"fmt"

	"transcript-search/internal/indexer"
	"transcript-search/internal/llm"
	"transcript-search/internal/storage"
	"transcript-search/internal/vectorstore"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when the embedding provider or vector store fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// classifyError tags err with the service sentinel matching its cause.
// The original chain stays reachable through errors.Is.
func classifyError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
	case errors.Is(err, llm.ErrProvider), errors.Is(err, vectorstore.ErrStoreWrite):
		return fmt.Errorf("%s: %w: %w", msg, ErrExternalService, err)
	case errors.Is(err, indexer.ErrInvalidInterval):
		return fmt.Errorf("%s: %w: %w", msg, ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
