package storage

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys on every pooled connection and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", path+sep+"_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the channel, video and subtitle tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS channels (
			channel_id TEXT PRIMARY KEY,
			channel_name TEXT NOT NULL,
			channel_url TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS videos (
			video_id TEXT PRIMARY KEY,
			video_title TEXT NOT NULL,
			video_url TEXT NOT NULL DEFAULT '',
			video_date TEXT NOT NULL,
			channel_id TEXT NOT NULL,
			FOREIGN KEY (channel_id) REFERENCES channels(channel_id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_videos_channel ON videos(channel_id);`,
		`CREATE TABLE IF NOT EXISTS subtitles (
			subtitle_id INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id TEXT NOT NULL,
			start_time TEXT NOT NULL,
			stop_time TEXT NOT NULL,
			text TEXT NOT NULL,
			FOREIGN KEY (video_id) REFERENCES videos(video_id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_subtitles_video ON subtitles(video_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
