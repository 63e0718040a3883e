package storage

import "time"

// VideoDateLayout is the layout video dates are stored in.
const VideoDateLayout = "2006-01-02"

// Channel represents a YouTube channel in the database.
type Channel struct {
	ID   string
	Name string
	URL  string
}

// Video represents a video belonging to a channel.
type Video struct {
	ID        string
	ChannelID string
	Title     string
	URL       string
	Date      time.Time // Upload date (day precision)
}

// VideoMetadata is the subset of video fields attached to each segment.
type VideoMetadata struct {
	Title string
	Date  time.Time
}

// SubtitleLine is one timestamped subtitle line.
type SubtitleLine struct {
	Start string // Format: "HH:MM:SS.ffffff"
	Stop  string // Format: "HH:MM:SS.ffffff"
	Text  string
}
