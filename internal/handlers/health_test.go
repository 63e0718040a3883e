package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"transcript-search/internal/vectorstore/mocks"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		pinger     Pinger
		mockSetup  func(*mocks.MockVectorStore)
		wantStatus int
		wantHealth string
	}{
		{
			name:   "healthy",
			method: http.MethodGet,
			pinger: stubPinger{},
			mockSetup: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "subEmbeddings").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
		},
		{
			name:   "collection missing is degraded",
			method: http.MethodGet,
			pinger: stubPinger{},
			mockSetup: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "subEmbeddings").Return(false, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "degraded",
		},
		{
			name:   "vector store unavailable",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "subEmbeddings").Return(false, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:   "database unavailable",
			method: http.MethodGet,
			pinger: stubPinger{err: errors.New("database is locked")},
			mockSetup: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "subEmbeddings").Return(true, nil)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *mocks.MockVectorStore) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockVectorStore(ctrl)
			tt.mockSetup(store)

			handler := NewHealthHandler(store, tt.pinger, "subEmbeddings")
			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantHealth == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantHealth {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantHealth)
			}
			if resp.Timestamp == "" {
				t.Error("Timestamp should be set")
			}
		})
	}
}
