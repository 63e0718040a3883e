package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_channel_ingester.go -package=mocks transcript-search/internal/service ChannelIngester
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingest_service.go -package=mocks transcript-search/internal/service IngestService

import (
	"context"
	"strings"

	"transcript-search/internal/contextutil"
	"transcript-search/internal/indexer"
)

// ChannelIngester builds the embedding index for one channel.
// This interface is defined from the service layer's perspective (consumer-first).
type ChannelIngester interface {
	IngestChannel(ctx context.Context, channelID string) (*indexer.IngestStats, error)
}

// IngestRequest represents an ingestion request in the domain layer.
type IngestRequest struct {
	ChannelID string `validate:"required"`
}

// IngestService provides channel ingestion.
type IngestService interface {
	// Ingest embeds every subtitle segment of the requested channel.
	// The returned stats are never nil once validation has passed.
	Ingest(ctx context.Context, req IngestRequest) (*indexer.IngestStats, error)
}

// ingestService implements IngestService.
type ingestService struct {
	ingester ChannelIngester
}

// NewIngestService creates a new IngestService.
func NewIngestService(ingester ChannelIngester) IngestService {
	return &ingestService{ingester: ingester}
}

// Ingest validates the request and runs the ingestion.
func (s *ingestService) Ingest(ctx context.Context, req IngestRequest) (*indexer.IngestStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	channelID := strings.TrimSpace(req.ChannelID)
	if channelID == "" {
		logger.WarnContext(ctx, "empty channel id in ingest request")
		return nil, &ValidationError{
			Field:   "channel_id",
			Message: "cannot be empty",
		}
	}

	stats, err := s.ingester.IngestChannel(ctx, channelID)
	if err != nil {
		logger.ErrorContext(ctx, "channel ingestion failed", "channel_id", channelID, "error", err)
		return stats, classifyError(err, "failed to ingest channel")
	}

	logger.InfoContext(ctx, "channel ingested",
		"channel_id", channelID,
		"records", stats.RecordsWritten,
		"skipped", stats.VideosSkipped,
	)
	return stats, nil
}
