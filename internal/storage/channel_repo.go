package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_channel_store.go -package=mocks transcript-search/internal/storage ChannelStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ChannelStore defines the interface for channel lookups.
type ChannelStore interface {
	// GetName returns the channel name. Returns ErrNotFound if not found.
	GetName(ctx context.Context, channelID string) (string, error)
}

// ChannelRepo provides methods for channel operations.
type ChannelRepo struct {
	db *sql.DB
}

// NewChannelRepo creates a new ChannelRepo.
func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// Insert inserts a channel, replacing the name and URL if it already exists.
func (r *ChannelRepo) Insert(ctx context.Context, channel Channel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO channels (channel_id, channel_name, channel_url) VALUES (?, ?, ?)
		 ON CONFLICT (channel_id) DO UPDATE SET
		 channel_name = excluded.channel_name, channel_url = excluded.channel_url`,
		channel.ID, channel.Name, channel.URL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert channel: %w", err)
	}
	return nil
}

// GetName returns the channel name for a channel ID. Returns ErrNotFound if not found.
func (r *ChannelRepo) GetName(ctx context.Context, channelID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		"SELECT channel_name FROM channels WHERE channel_id = ?",
		channelID,
	).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query channel: %w", err)
	}

	return name, nil
}
