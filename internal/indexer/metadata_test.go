package indexer

import (
	"testing"
	"time"

	"transcript-search/internal/storage"
)

func TestFormatTextWithMetadata(t *testing.T) {
	got := FormatTextWithMetadata(
		"Woodworking Weekly",
		"Building a Kayak",
		time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
		Segment{StartTime: "00:01:10.000", Text: "first we steam the ribs"},
	)

	want := "---\n" +
		"video_title: Building a Kayak\n" +
		"channel_name: Woodworking Weekly\n" +
		"video_date: 2023-03-15\n" +
		"segment_start_time: 00:01:10.000\n" +
		"---\n" +
		"\n" +
		"Content:\n" +
		"\n" +
		"first we steam the ribs"

	if got != want {
		t.Errorf("FormatTextWithMetadata() =\n%q\nwant\n%q", got, want)
	}
}

func TestNewRecord(t *testing.T) {
	segment := enrich("UC1", "Chan", "vid1", storage.VideoMetadata{
		Title: "Title",
		Date:  time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC),
	}, Segment{StartTime: "00:00:05.000", Text: "raw text"})

	record := newRecord("id-1", segment, []float32{0.1, 0.2})

	if record.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", record.ID)
	}
	if record.Document != "raw text" {
		t.Errorf("Document = %q, want the raw segment text", record.Document)
	}
	if record.Meta.VideoDate != "2021-12-01" {
		t.Errorf("VideoDate = %q, want 2021-12-01", record.Meta.VideoDate)
	}
	if record.Meta.StartTime != "00:00:05.000" || record.Meta.VideoTitle != "Title" {
		t.Errorf("Meta = %+v", record.Meta)
	}
	if segment.TextWithMetadata == record.Document {
		t.Error("document should not include the metadata header")
	}
}
