package moderation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/", "token-1")
	require.NoError(t, err)

	return client
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, body map[string]any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient_RequiresAbsoluteURL(t *testing.T) {
	_, err := NewClient("localhost:8080", "")
	assert.Error(t, err)

	_, err = NewClient("/api", "")
	assert.Error(t, err)

	client, err := NewClient("https://safemap.example/", "")
	require.NoError(t, err)
	assert.Equal(t, "https://safemap.example", client.baseURL.String())
}

func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/moderation/pins", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"request_id": "req-1",
			"data": []map[string]any{
				{"id": 4, "kind": "pin", "city_id": 1, "status": "pending", "title": "Airport taxi"},
				{"id": 9, "kind": "pin", "city_id": 1, "status": "pending", "title": "Gem shop"},
			},
		})
	})

	items, err := client.List(context.Background(), "pins", "pending", 20)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(4), items[0].ID)
	assert.Equal(t, "Gem shop", items[1].Title)
}

func TestClient_Decisions(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)

		writeEnvelope(t, w, http.StatusOK, map[string]any{"data": map[string]any{"kind": "zone"}})
	})

	require.NoError(t, client.Approve(context.Background(), "zone", 3))
	require.NoError(t, client.Reject(context.Background(), "tip", 8))

	assert.Equal(t, []string{
		"/api/v1/moderation/zone/3/approve",
		"/api/v1/moderation/tip/8/reject",
	}, paths)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       map[string]any
		wantCode   string
		isReviewed bool
		isNotFound bool
	}{
		{
			name:       "already reviewed",
			status:     http.StatusConflict,
			body:       map[string]any{"error": map[string]any{"code": "ALREADY_REVIEWED", "message": "done"}},
			wantCode:   "ALREADY_REVIEWED",
			isReviewed: true,
		},
		{
			name:       "invalid transition",
			status:     http.StatusConflict,
			body:       map[string]any{"error": map[string]any{"code": "INVALID_TRANSITION", "message": "nope"}},
			wantCode:   "INVALID_TRANSITION",
			isReviewed: true,
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			body:       map[string]any{"error": map[string]any{"code": "SUBMISSION_NOT_FOUND", "message": "gone"}},
			wantCode:   "SUBMISSION_NOT_FOUND",
			isNotFound: true,
		},
		{
			name:     "server error without envelope",
			status:   http.StatusBadGateway,
			body:     map[string]any{"unexpected": true},
			wantCode: "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(t, w, tt.status, tt.body)
			})

			err := client.Approve(context.Background(), "pin", 1)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.isReviewed, errors.Is(err, ErrAlreadyReviewed))
			assert.Equal(t, tt.isNotFound, errors.Is(err, ErrNotFound))
		})
	}
}
