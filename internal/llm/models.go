package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
)

// ErrModelNotFound is returned when the provider does not serve the configured model.
var ErrModelNotFound = errors.New("embedding model not found")

// CheckModel asks the provider whether the configured model is served.
// Providers that do not implement the models endpoint are treated as serving it.
func (c *EmbeddingsClient) CheckModel(ctx context.Context) error {
	_, err := c.client.Models.Get(ctx, c.Model)
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrModelNotFound, c.Model)
		case http.StatusMethodNotAllowed, http.StatusNotImplemented:
			return nil
		}
	}
	return fmt.Errorf("%w: failed to check model: %w", ErrProvider, err)
}

// Validate checks the model and embeds a probe text, which also checks
// the vector size against ExpectedSize.
func (c *EmbeddingsClient) Validate(ctx context.Context) error {
	if err := c.CheckModel(ctx); err != nil {
		return err
	}
	if _, err := c.EmbedTexts(ctx, []string{"test"}); err != nil {
		return fmt.Errorf("failed to validate embedding client: %w", err)
	}
	return nil
}
