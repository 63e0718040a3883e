package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// newTestDB opens a migrated database in a temp dir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func TestChannelRepo_GetName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChannelRepo(db)

	if err := repo.Insert(ctx, Channel{ID: "UC123", Name: "Old Name"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	// Insert again to exercise the upsert path
	if err := repo.Insert(ctx, Channel{ID: "UC123", Name: "Test Channel", URL: "https://youtube.com/@test"}); err != nil {
		t.Fatalf("Insert() second call error = %v", err)
	}

	tests := []struct {
		name      string
		channelID string
		want      string
		wantErr   error
	}{
		{name: "existing channel", channelID: "UC123", want: "Test Channel"},
		{name: "missing channel", channelID: "UC999", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetName(ctx, tt.channelID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetName() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetName() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVideoRepo_ListIDsByChannel(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewChannelRepo(db).Insert(ctx, Channel{ID: "UC123", Name: "Test Channel"}); err != nil {
		t.Fatalf("Insert() channel error = %v", err)
	}
	if err := NewChannelRepo(db).Insert(ctx, Channel{ID: "UCempty", Name: "Empty"}); err != nil {
		t.Fatalf("Insert() channel error = %v", err)
	}

	repo := NewVideoRepo(db)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"vid-b", "vid-a", "vid-c"} {
		if err := repo.Insert(ctx, Video{ID: id, ChannelID: "UC123", Title: id, Date: date}); err != nil {
			t.Fatalf("Insert() video %s error = %v", id, err)
		}
	}

	ids, err := repo.ListIDsByChannel(ctx, "UC123")
	if err != nil {
		t.Fatalf("ListIDsByChannel() error = %v", err)
	}
	want := []string{"vid-b", "vid-a", "vid-c"}
	if len(ids) != len(want) {
		t.Fatalf("ListIDsByChannel() returned %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListIDsByChannel()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	empty, err := repo.ListIDsByChannel(ctx, "UCempty")
	if err != nil {
		t.Fatalf("ListIDsByChannel() empty channel error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListIDsByChannel() empty channel returned %d ids, want 0", len(empty))
	}
}

func TestVideoRepo_Insert_RequiresChannel(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepo(db)

	err := repo.Insert(context.Background(), Video{ID: "orphan", ChannelID: "missing", Title: "x", Date: time.Now()})
	if err == nil {
		t.Error("Insert() with unknown channel should fail foreign key check")
	}
}

func TestVideoRepo_GetMetadata(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewChannelRepo(db).Insert(ctx, Channel{ID: "UC123", Name: "Test Channel"}); err != nil {
		t.Fatalf("Insert() channel error = %v", err)
	}
	repo := NewVideoRepo(db)
	if err := repo.Insert(ctx, Video{
		ID:        "vid-1",
		ChannelID: "UC123",
		Title:     "Intro to Go",
		Date:      time.Date(2023, 11, 5, 15, 30, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("Insert() video error = %v", err)
	}

	meta, err := repo.GetMetadata(ctx, "vid-1")
	if err != nil {
		t.Fatalf("GetMetadata() error = %v", err)
	}
	if meta.Title != "Intro to Go" {
		t.Errorf("GetMetadata() Title = %q, want %q", meta.Title, "Intro to Go")
	}
	if got := meta.Date.Format(VideoDateLayout); got != "2023-11-05" {
		t.Errorf("GetMetadata() Date = %s, want 2023-11-05", got)
	}

	if _, err := repo.GetMetadata(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMetadata() missing video error = %v, want ErrNotFound", err)
	}
}

func TestSubtitleRepo_ListByVideoID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewChannelRepo(db).Insert(ctx, Channel{ID: "UC123", Name: "Test Channel"}); err != nil {
		t.Fatalf("Insert() channel error = %v", err)
	}
	if err := NewVideoRepo(db).Insert(ctx, Video{ID: "vid-1", ChannelID: "UC123", Title: "t", Date: time.Now()}); err != nil {
		t.Fatalf("Insert() video error = %v", err)
	}

	repo := NewSubtitleRepo(db)
	lines := []SubtitleLine{
		{Start: "00:00:12.000", Stop: "00:00:15.000", Text: "world"},
		{Start: "00:00:01.000", Stop: "00:00:05.000", Text: "hello"},
	}
	if err := repo.InsertBatch(ctx, "vid-1", lines); err != nil {
		t.Fatalf("InsertBatch() error = %v", err)
	}

	got, err := repo.ListByVideoID(ctx, "vid-1")
	if err != nil {
		t.Fatalf("ListByVideoID() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByVideoID() returned %d lines, want 2", len(got))
	}
	if got[0].Text != "hello" || got[1].Text != "world" {
		t.Errorf("ListByVideoID() not ordered by start time: %+v", got)
	}
	if got[0].Stop != "00:00:05.000" {
		t.Errorf("ListByVideoID()[0].Stop = %q, want 00:00:05.000", got[0].Stop)
	}

	none, err := repo.ListByVideoID(ctx, "no-subs")
	if err != nil {
		t.Fatalf("ListByVideoID() unknown video error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListByVideoID() unknown video returned %d lines, want 0", len(none))
	}
}
