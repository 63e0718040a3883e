package indexer

import (
	"strings"
	"time"

	"transcript-search/internal/storage"
	"transcript-search/internal/vectorstore"
)

// FormatTextWithMetadata renders the text sent to the embedding provider:
// a front-matter style header with the video context followed by the segment content.
func FormatTextWithMetadata(channelName, videoTitle string, videoDate time.Time, segment Segment) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("video_title: " + videoTitle + "\n")
	b.WriteString("channel_name: " + channelName + "\n")
	b.WriteString("video_date: " + videoDate.Format(storage.VideoDateLayout) + "\n")
	b.WriteString("segment_start_time: " + segment.StartTime + "\n")
	b.WriteString("---\n\nContent:\n\n")
	b.WriteString(segment.Text)
	return b.String()
}

// enrich attaches channel and video context to a segment.
func enrich(channelID, channelName, videoID string, meta storage.VideoMetadata, segment Segment) EnrichedSegment {
	return EnrichedSegment{
		Segment:          segment,
		ChannelID:        channelID,
		ChannelName:      channelName,
		VideoID:          videoID,
		VideoTitle:       meta.Title,
		VideoDate:        meta.Date,
		TextWithMetadata: FormatTextWithMetadata(channelName, meta.Title, meta.Date, segment),
	}
}

// newRecord builds the stored record: the raw text is the document, the
// metadata-augmented text is only used for the embedding.
func newRecord(id string, segment EnrichedSegment, vec []float32) vectorstore.Record {
	return vectorstore.Record{
		ID:       id,
		Document: segment.Text,
		Vec:      vec,
		Meta: vectorstore.Metadata{
			ChannelID:   segment.ChannelID,
			ChannelName: segment.ChannelName,
			VideoID:     segment.VideoID,
			VideoTitle:  segment.VideoTitle,
			VideoDate:   segment.VideoDate.Format(storage.VideoDateLayout),
			StartTime:   segment.StartTime,
		},
	}
}
