package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"transcript-search/internal/config"
	"transcript-search/internal/storage"
	"transcript-search/internal/vectorstore/mocks"
)

func TestSetupLogging(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		name   string
		format string
		level  slog.Level
		check  func(t *testing.T, out string)
	}{
		{
			name:   "json",
			format: "json",
			level:  slog.LevelInfo,
			check: func(t *testing.T, out string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
					t.Fatalf("output %q is not JSON: %v", out, err)
				}
				if entry["msg"] != "hello" {
					t.Errorf("msg = %v, want hello", entry["msg"])
				}
			},
		},
		{
			name:   "text filters below level",
			format: "text",
			level:  slog.LevelWarn,
			check: func(t *testing.T, out string) {
				if out != "" {
					t.Errorf("info message should be filtered at warn level, got %q", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupLogging(&config.Config{LogFormat: tt.format, LogLevel: tt.level}, &buf)
			if slog.Default() != logger {
				t.Error("SetupLogging() should install the default logger")
			}
			buf.Reset()

			logger.Info("hello")
			tt.check(t, buf.String())
		})
	}
}

func TestOpenVectorStore_Unsupported(t *testing.T) {
	_, err := OpenVectorStore(context.Background(), &config.Config{VectorStore: "chroma"})
	if err == nil {
		t.Fatal("OpenVectorStore() expected error for unsupported backend")
	}
}

func TestApp_PipelineAndClose(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	ctrl := gomock.NewController(t)
	store := mocks.NewMockVectorStore(ctrl)
	store.EXPECT().Close().Return(nil)

	a := &App{
		DB:          db,
		VectorStore: store,
		cfg:         &config.Config{VectorCollection: "subs", SegmentInterval: 10, EmbeddingBatchSize: 100},
	}

	p := a.Pipeline(PipelineOverrides{Interval: 30})
	if p.Collection() != "subs" {
		t.Errorf("Collection() = %q, want subs", p.Collection())
	}

	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := db.Ping(); err == nil {
		t.Error("database should be closed")
	}
}
