package vectorstore

import (
	"context"
	"errors"
	"testing"

	"github.com/milvus-io/milvus-sdk-go/v2/entity"
)

func TestSegmentSchema(t *testing.T) {
	schema := segmentSchema("subEmbeddings", 768)

	if schema.CollectionName != "subEmbeddings" {
		t.Errorf("CollectionName = %q, want subEmbeddings", schema.CollectionName)
	}
	if schema.AutoID {
		t.Error("schema should use client-assigned IDs")
	}

	wantFields := append([]string{"id", "document", "embedding"}, milvusMetaFields...)
	if len(schema.Fields) != len(wantFields) {
		t.Fatalf("schema has %d fields, want %d", len(schema.Fields), len(wantFields))
	}
	for i, name := range wantFields {
		if schema.Fields[i].Name != name {
			t.Errorf("field[%d] = %q, want %q", i, schema.Fields[i].Name, name)
		}
	}
	if !schema.Fields[0].PrimaryKey {
		t.Error("id field should be the primary key")
	}

	dim, err := embeddingDim(schema)
	if err != nil {
		t.Fatalf("embeddingDim() error = %v", err)
	}
	if dim != 768 {
		t.Errorf("embeddingDim() = %d, want 768", dim)
	}
}

func TestEmbeddingDim_Invalid(t *testing.T) {
	if _, err := embeddingDim(nil); err == nil {
		t.Error("embeddingDim(nil) should return error")
	}

	schema := &entity.Schema{Fields: []*entity.Field{{Name: "id"}}}
	if _, err := embeddingDim(schema); err == nil {
		t.Error("embeddingDim() without embedding field should return error")
	}
}

func TestRecordColumns(t *testing.T) {
	records := []Record{
		{ID: "a", Document: "first", Vec: []float32{1, 2}, Meta: Metadata{ChannelID: "UC1", VideoID: "v1", StartTime: "00:00:01.000"}},
		{ID: "b", Document: "second", Vec: []float32{3, 4}, Meta: Metadata{ChannelID: "UC1", VideoID: "v2", StartTime: "00:00:11.000"}},
	}

	columns, err := recordColumns(records)
	if err != nil {
		t.Fatalf("recordColumns() error = %v", err)
	}
	if len(columns) != 3+len(milvusMetaFields) {
		t.Fatalf("recordColumns() returned %d columns, want %d", len(columns), 3+len(milvusMetaFields))
	}

	byName := make(map[string]entity.Column, len(columns))
	for _, col := range columns {
		if col.Len() != len(records) {
			t.Errorf("column %s has %d rows, want %d", col.Name(), col.Len(), len(records))
		}
		byName[col.Name()] = col
	}

	docs := byName["document"].(*entity.ColumnVarChar).Data()
	if docs[0] != "first" || docs[1] != "second" {
		t.Errorf("document column = %v", docs)
	}
	videos := byName["video_id"].(*entity.ColumnVarChar).Data()
	if videos[0] != "v1" || videos[1] != "v2" {
		t.Errorf("video_id column = %v", videos)
	}
	if dim := byName["embedding"].(*entity.ColumnFloatVector).Dim(); dim != 2 {
		t.Errorf("embedding dim = %d, want 2", dim)
	}
}

func TestRecordColumns_DimensionMismatch(t *testing.T) {
	records := []Record{
		{ID: "a", Vec: []float32{1, 2}},
		{ID: "b", Vec: []float32{1}},
	}

	if _, err := recordColumns(records); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("recordColumns() error = %v, want ErrInvalidRecord", err)
	}
}

func TestMilvusStore_Add_EmptyRecords(t *testing.T) {
	store := &MilvusStore{maxBatchSize: 10}

	if err := store.Add(context.Background(), "subEmbeddings", nil); err != nil {
		t.Errorf("Add() with no records should return early, got: %v", err)
	}
}

func TestMetadata_Map(t *testing.T) {
	meta := Metadata{
		ChannelID:   "UC1",
		ChannelName: "Chan",
		VideoID:     "v1",
		VideoTitle:  "Title",
		VideoDate:   "2024-01-02",
		StartTime:   "00:00:01.000",
	}

	got := meta.Map()
	if len(got) != len(milvusMetaFields) {
		t.Fatalf("Map() has %d keys, want %d", len(got), len(milvusMetaFields))
	}
	for _, key := range milvusMetaFields {
		if _, ok := got[key]; !ok {
			t.Errorf("Map() missing key %q", key)
		}
	}
	if got["video_date"] != "2024-01-02" {
		t.Errorf("Map()[video_date] = %v, want 2024-01-02", got["video_date"])
	}
}
