package indexer

import "time"

// DefaultInterval is the default segment width in seconds.
const DefaultInterval = 10

// Segment is a time bucket of subtitle text for one video.
type Segment struct {
	StartTime string // Original timestamp of the first line in the bucket
	Text      string // Space-joined, trimmed line texts
}

// EnrichedSegment is a Segment with the channel and video context it is embedded with.
type EnrichedSegment struct {
	Segment
	ChannelID        string
	ChannelName      string
	VideoID          string
	VideoTitle       string
	VideoDate        time.Time
	TextWithMetadata string // Sent to the embedding provider
}
