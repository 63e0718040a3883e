package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_video_store.go -package=mocks transcript-search/internal/storage VideoStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// VideoStore defines the interface for video lookups.
type VideoStore interface {
	// ListIDsByChannel returns the channel's video IDs in enumeration order.
	ListIDsByChannel(ctx context.Context, channelID string) ([]string, error)
	// GetMetadata returns the title and date of a video. Returns ErrNotFound if not found.
	GetMetadata(ctx context.Context, videoID string) (VideoMetadata, error)
}

// VideoRepo provides methods for video operations.
type VideoRepo struct {
	db *sql.DB
}

// NewVideoRepo creates a new VideoRepo.
func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// Insert inserts a video. The owning channel must already exist.
func (r *VideoRepo) Insert(ctx context.Context, video Video) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO videos (video_id, video_title, video_url, video_date, channel_id) VALUES (?, ?, ?, ?, ?)",
		video.ID, video.Title, video.URL, video.Date.Format(VideoDateLayout), video.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

// ListIDsByChannel returns the video IDs of a channel in insertion order.
// Returns an empty slice if the channel has no videos (not an error).
func (r *VideoRepo) ListIDsByChannel(ctx context.Context, channelID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT video_id FROM videos WHERE channel_id = ? ORDER BY rowid",
		channelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query video IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan video ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// GetMetadata returns the title and upload date of a video. Returns ErrNotFound if not found.
func (r *VideoRepo) GetMetadata(ctx context.Context, videoID string) (VideoMetadata, error) {
	var meta VideoMetadata
	var dateStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT video_title, video_date FROM videos WHERE video_id = ?",
		videoID,
	).Scan(&meta.Title, &dateStr)

	if errors.Is(err, sql.ErrNoRows) {
		return VideoMetadata{}, ErrNotFound
	}
	if err != nil {
		return VideoMetadata{}, fmt.Errorf("failed to query video: %w", err)
	}

	meta.Date, err = time.Parse(VideoDateLayout, dateStr)
	if err != nil {
		return VideoMetadata{}, fmt.Errorf("failed to parse video_date %q: %w", dateStr, err)
	}

	return meta, nil
}
