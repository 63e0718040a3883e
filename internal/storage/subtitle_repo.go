package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_subtitle_store.go -package=mocks transcript-search/internal/storage SubtitleStore

import (
	"context"
	"database/sql"
	"fmt"
)

// SubtitleStore defines the interface for subtitle lookups.
type SubtitleStore interface {
	// ListByVideoID returns the video's subtitle lines ordered by start time.
	ListByVideoID(ctx context.Context, videoID string) ([]SubtitleLine, error)
}

// SubtitleRepo provides methods for subtitle operations.
type SubtitleRepo struct {
	db *sql.DB
}

// NewSubtitleRepo creates a new SubtitleRepo.
func NewSubtitleRepo(db *sql.DB) *SubtitleRepo {
	return &SubtitleRepo{db: db}
}

// InsertBatch inserts the subtitle lines of a video in a single transaction.
func (r *SubtitleRepo) InsertBatch(ctx context.Context, videoID string, lines []SubtitleLine) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO subtitles (video_id, start_time, stop_time, text) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare subtitle insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, line := range lines {
		if _, err := stmt.ExecContext(ctx, videoID, line.Start, line.Stop, line.Text); err != nil {
			return fmt.Errorf("failed to insert subtitle: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit subtitles: %w", err)
	}
	return nil
}

// ListByVideoID returns the subtitle lines of a video ordered by start time.
// Returns an empty slice if the video has no subtitles (not an error).
func (r *SubtitleRepo) ListByVideoID(ctx context.Context, videoID string) ([]SubtitleLine, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT start_time, stop_time, text FROM subtitles WHERE video_id = ? ORDER BY start_time, subtitle_id",
		videoID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query subtitles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	lines := []SubtitleLine{}
	for rows.Next() {
		var line SubtitleLine
		if err := rows.Scan(&line.Start, &line.Stop, &line.Text); err != nil {
			return nil, fmt.Errorf("failed to scan subtitle: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lines, nil
}
