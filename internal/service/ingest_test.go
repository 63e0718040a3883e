package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"transcript-search/internal/indexer"
	"transcript-search/internal/llm"
	"transcript-search/internal/service"
	"transcript-search/internal/service/mocks"
)

func TestIngestService_Ingest(t *testing.T) {
	tests := []struct {
		name      string
		req       service.IngestRequest
		mockSetup func(*mocks.MockChannelIngester)
		wantErr   error
		wantStats bool
	}{
		{
			name: "success",
			req:  service.IngestRequest{ChannelID: "UC123"},
			mockSetup: func(m *mocks.MockChannelIngester) {
				m.EXPECT().IngestChannel(gomock.Any(), "UC123").
					Return(&indexer.IngestStats{ChannelID: "UC123", RecordsWritten: 4}, nil)
			},
			wantStats: true,
		},
		{
			name: "channel id is trimmed",
			req:  service.IngestRequest{ChannelID: "  UC123 "},
			mockSetup: func(m *mocks.MockChannelIngester) {
				m.EXPECT().IngestChannel(gomock.Any(), "UC123").
					Return(&indexer.IngestStats{ChannelID: "UC123"}, nil)
			},
			wantStats: true,
		},
		{
			name:      "empty channel id",
			req:       service.IngestRequest{ChannelID: " "},
			mockSetup: func(m *mocks.MockChannelIngester) {},
			wantErr:   service.ErrInvalidInput,
		},
		{
			name: "provider failure keeps partial stats",
			req:  service.IngestRequest{ChannelID: "UC123"},
			mockSetup: func(m *mocks.MockChannelIngester) {
				m.EXPECT().IngestChannel(gomock.Any(), "UC123").
					Return(&indexer.IngestStats{ChannelID: "UC123"}, fmt.Errorf("embed: %w", llm.ErrProvider))
			},
			wantErr:   service.ErrExternalService,
			wantStats: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingester := mocks.NewMockChannelIngester(ctrl)
			tt.mockSetup(ingester)

			svc := service.NewIngestService(ingester)
			stats, err := svc.Ingest(context.Background(), tt.req)

			switch {
			case errors.Is(tt.wantErr, service.ErrInvalidInput):
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("Ingest() error = %v, want service.ValidationError", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Ingest() error = %v, want %v", err, tt.wantErr)
				}
			case err != nil:
				t.Fatalf("Ingest() unexpected error: %v", err)
			}

			if tt.wantStats && stats == nil {
				t.Error("Ingest() stats should not be nil")
			}
		})
	}
}
