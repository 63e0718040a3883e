package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"transcript-search/internal/contextutil"
	"transcript-search/internal/llm"
	"transcript-search/internal/storage"
	"transcript-search/internal/vectorstore"
)

// DefaultCollection is the collection segment embeddings are written to.
const DefaultCollection = "subEmbeddings"

// Reporter receives operator-facing progress while a channel is ingested.
type Reporter interface {
	// VideoSkipped is called for each video skipped for subtitle reasons.
	VideoSkipped(videoID string, reason error)
	// EmbeddingProgress is called after each embedding request.
	EmbeddingProgress(done, total int)
	// BatchWritten is called after each successful store write.
	BatchWritten(written, total int)
}

type nopReporter struct{}

func (nopReporter) VideoSkipped(string, error)  {}
func (nopReporter) EmbeddingProgress(int, int) {}
func (nopReporter) BatchWritten(int, int)      {}

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	Collection         string
	VectorSize         int // 0 uses the length of the first embedding
	Interval           int // seconds
	EmbeddingBatchSize int
	Replace            bool // delete the channel's existing records before writing
	Reporter           Reporter
}

// Pipeline turns a channel's subtitles into segment embeddings in the vector store.
type Pipeline struct {
	channels  storage.ChannelStore
	videos    storage.VideoStore
	subtitles storage.SubtitleStore
	embedder  llm.Embedder
	store     vectorstore.VectorStore
	segmenter *Segmenter
	opts      Options
	newID     func() string
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	channels storage.ChannelStore,
	videos storage.VideoStore,
	subtitles storage.SubtitleStore,
	embedder llm.Embedder,
	store vectorstore.VectorStore,
	opts Options,
) *Pipeline {
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.EmbeddingBatchSize <= 0 {
		opts.EmbeddingBatchSize = DefaultEmbeddingBatchSize
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	return &Pipeline{
		channels:  channels,
		videos:    videos,
		subtitles: subtitles,
		embedder:  embedder,
		store:     store,
		segmenter: NewSegmenter(opts.Interval),
		opts:      opts,
		newID:     func() string { return uuid.New().String() },
	}
}

// Collection returns the collection the pipeline writes to.
func (p *Pipeline) Collection() string {
	return p.opts.Collection
}

// IngestChannel segments every video of a channel, embeds the segments and
// writes them to the vector store. Videos without subtitles or shorter than
// one interval are skipped; any other error stops the ingestion. The returned
// stats are never nil and reflect the work done so far, including batches
// already committed when a later write fails.
func (p *Pipeline) IngestChannel(ctx context.Context, channelID string) (*IngestStats, error) {
	logger := contextutil.LoggerFromContext(ctx).With("channel_id", channelID)
	stats := newIngestStats(channelID)

	channelName, err := p.channels.GetName(ctx, channelID)
	if err != nil {
		return stats, fmt.Errorf("failed to get channel name: %w", err)
	}
	stats.ChannelName = channelName

	videoIDs, err := p.videos.ListIDsByChannel(ctx, channelID)
	if err != nil {
		return stats, fmt.Errorf("failed to list channel videos: %w", err)
	}
	stats.VideosTotal = len(videoIDs)

	if len(videoIDs) == 0 {
		logger.InfoContext(ctx, "channel has no videos, nothing to ingest")
		return stats, nil
	}

	logger.InfoContext(ctx, "starting ingestion", "videos", len(videoIDs), "interval", p.segmenter.Interval())

	var segments []EnrichedSegment
	for _, videoID := range videoIDs {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		videoSegments, err := p.segmentVideo(ctx, channelID, channelName, videoID, stats)
		if errors.Is(err, ErrNoSubtitles) || errors.Is(err, ErrTooShort) {
			logger.WarnContext(ctx, "skipping video", "video_id", videoID, "reason", err)
			stats.recordSkip(err)
			p.opts.Reporter.VideoSkipped(videoID, err)
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("video %s: %w", videoID, err)
		}

		stats.VideosIngested++
		segments = append(segments, videoSegments...)
	}
	stats.Segments = len(segments)

	if len(segments) == 0 {
		logger.InfoContext(ctx, "no segments to embed", "skipped", stats.VideosSkipped)
		return stats, nil
	}

	embeddings, err := p.embedSegments(ctx, segments, stats)
	if err != nil {
		return stats, err
	}

	if err := p.writeRecords(ctx, channelID, segments, embeddings, stats); err != nil {
		return stats, err
	}

	logger.InfoContext(ctx, "ingestion completed",
		"videos", stats.VideosTotal,
		"skipped", stats.VideosSkipped,
		"segments", stats.Segments,
		"records", stats.RecordsWritten,
	)
	return stats, nil
}

// segmentVideo splits one video's subtitles and enriches its non-empty segments.
func (p *Pipeline) segmentVideo(ctx context.Context, channelID, channelName, videoID string, stats *IngestStats) ([]EnrichedSegment, error) {
	lines, err := p.subtitles.ListByVideoID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtitles: %w", err)
	}

	split, err := p.segmenter.Split(lines)
	if err != nil {
		return nil, err
	}

	meta, err := p.videos.GetMetadata(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video metadata: %w", err)
	}

	enriched := make([]EnrichedSegment, 0, len(split))
	for _, segment := range split {
		if segment.Text == "" {
			stats.EmptySegmentsDropped++
			continue
		}
		enriched = append(enriched, enrich(channelID, channelName, videoID, meta, segment))
	}
	return enriched, nil
}

// embedSegments requests embeddings for every segment's metadata-augmented
// text and returns them aligned with segments.
func (p *Pipeline) embedSegments(ctx context.Context, segments []EnrichedSegment, stats *IngestStats) ([][]float32, error) {
	texts := make([]string, len(segments))
	for i, segment := range segments {
		texts[i] = segment.TextWithMetadata
	}

	batchSize := p.opts.EmbeddingBatchSize
	total := len(texts)
	embeddings := make([][]float32, 0, total)

	for vec, err := range embeddingBatches(ctx, p.embedder, texts, batchSize) {
		if err != nil {
			stats.EmbeddingRequests = requestCount(len(embeddings), batchSize) + 1
			return nil, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		embeddings = append(embeddings, vec)
		if done := len(embeddings); done%batchSize == 0 || done == total {
			p.opts.Reporter.EmbeddingProgress(done, total)
		}
	}
	stats.EmbeddingRequests = requestCount(total, batchSize)

	if len(embeddings) != total {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", total, len(embeddings))
	}
	return embeddings, nil
}

// writeRecords writes one record per segment in batches of MaxBatchSize()/5.
func (p *Pipeline) writeRecords(ctx context.Context, channelID string, segments []EnrichedSegment, embeddings [][]float32, stats *IngestStats) error {
	logger := contextutil.LoggerFromContext(ctx)
	collection := p.opts.Collection

	vectorSize := p.opts.VectorSize
	if vectorSize == 0 {
		vectorSize = len(embeddings[0])
	}
	if err := p.store.EnsureCollection(ctx, collection, vectorSize); err != nil {
		return fmt.Errorf("failed to ensure collection: %w", err)
	}

	if p.opts.Replace {
		if err := p.store.DeleteByChannel(ctx, collection, channelID); err != nil {
			return fmt.Errorf("failed to delete existing channel records: %w", err)
		}
	}

	records := make([]vectorstore.Record, len(segments))
	for i, segment := range segments {
		records[i] = newRecord(p.newID(), segment, embeddings[i])
	}

	batchSize := writeBatchSize(p.store.MaxBatchSize())
	logger.DebugContext(ctx, "writing records", "records", len(records), "batch_size", batchSize)

	for start := 0; start < len(records); start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+batchSize, len(records))

		if err := p.store.Add(ctx, collection, records[start:end]); err != nil {
			return fmt.Errorf("failed to write records %d-%d: %w", start, end, err)
		}

		stats.WriteBatches++
		stats.RecordsWritten += end - start
		p.opts.Reporter.BatchWritten(stats.RecordsWritten, len(records))
	}

	return nil
}
