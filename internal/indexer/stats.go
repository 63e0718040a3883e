package indexer

import "errors"

// Skip reasons recorded in IngestStats.SkipReasons.
const (
	SkipReasonNoSubtitles = "no_subtitles"
	SkipReasonTooShort    = "too_short"
)

// IngestStats summarises one channel ingestion.
type IngestStats struct {
	// ChannelID is the ingested channel.
	ChannelID string `json:"channel_id"`
	// ChannelName is the resolved channel name.
	ChannelName string `json:"channel_name"`
	// VideosTotal is the number of videos enumerated for the channel.
	VideosTotal int `json:"videos_total"`
	// VideosIngested is the number of videos that were segmented.
	VideosIngested int `json:"videos_ingested"`
	// VideosSkipped is the number of videos skipped for subtitle reasons.
	VideosSkipped int `json:"videos_skipped"`
	// SkipReasons is a breakdown of why videos were skipped.
	SkipReasons map[string]int `json:"skip_reasons,omitempty"`
	// Segments is the number of non-empty segments embedded.
	Segments int `json:"segments"`
	// EmptySegmentsDropped is the number of segments dropped for empty text.
	EmptySegmentsDropped int `json:"empty_segments_dropped"`
	// EmbeddingRequests is the number of provider requests issued.
	EmbeddingRequests int `json:"embedding_requests"`
	// WriteBatches is the number of store writes that succeeded.
	WriteBatches int `json:"write_batches"`
	// RecordsWritten is the number of records committed to the store.
	RecordsWritten int `json:"records_written"`
}

func newIngestStats(channelID string) *IngestStats {
	return &IngestStats{
		ChannelID:   channelID,
		SkipReasons: make(map[string]int),
	}
}

// recordSkip counts a skipped video under the reason matching err.
func (s *IngestStats) recordSkip(err error) {
	s.VideosSkipped++
	switch {
	case errors.Is(err, ErrNoSubtitles):
		s.SkipReasons[SkipReasonNoSubtitles]++
	case errors.Is(err, ErrTooShort):
		s.SkipReasons[SkipReasonTooShort]++
	}
}
