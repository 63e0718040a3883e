package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbeddingsClient_CheckModel(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "model served", status: http.StatusOK},
		{name: "model missing", status: http.StatusNotFound, wantErr: ErrModelNotFound},
		{name: "endpoint not implemented", status: http.StatusNotImplemented},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_ = json.NewEncoder(w).Encode(map[string]any{
						"id": "test-model", "object": "model", "created": 0, "owned_by": "test",
					})
					return
				}
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "nope", "type": "invalid_request_error"},
				})
			}))
			defer server.Close()

			err := newTestClient(server.URL, 0).CheckModel(context.Background())

			if gotPath != "/v1/models/test-model" {
				t.Errorf("request path = %q, want /v1/models/test-model", gotPath)
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckModel() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckModel() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddingsClient_Validate(t *testing.T) {
	tests := []struct {
		name         string
		expectedSize int
		returnSize   int
		wantErr      bool
	}{
		{name: "matching size", expectedSize: 4, returnSize: 4},
		{name: "size mismatch", expectedSize: 8, returnSize: 4, wantErr: true},
		{name: "size check disabled", expectedSize: 0, returnSize: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasPrefix(r.URL.Path, "/v1/models/") {
					w.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(w).Encode(map[string]any{
						"id": "test-model", "object": "model", "created": 0, "owned_by": "test",
					})
					return
				}
				writeEmbeddings(w, vectorsFor(1, tt.returnSize))
			}))
			defer server.Close()

			err := newTestClient(server.URL, tt.expectedSize).Validate(context.Background())
			if tt.wantErr {
				if !errors.Is(err, ErrProvider) {
					t.Errorf("Validate() error = %v, want ErrProvider", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
