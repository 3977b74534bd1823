package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safemap/config"
	"safemap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approvedEvent() *service.ModerationEvent {
	return &service.ModerationEvent{
		RequestID:    "req-1",
		Action:       service.ModerationActionApproved,
		Kind:         "pin",
		SubmissionID: 42,
		CityID:       1,
		ReviewerID:   "mod-1",
		EntityKind:   "pin",
		EntityID:     7,
		OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishModerationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishModerationEvent(context.Background(), approvedEvent())

	require.NoError(t, err)
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "approved", received.Message.Attributes["action"])
	assert.Equal(t, "42", received.Message.Attributes["submission_id"])
	assert.Equal(t, "7", received.Message.Attributes["entity_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.ModerationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *approvedEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishModerationEvent(context.Background(), approvedEvent())

	assert.ErrorContains(t, err, "502")
}

func TestEventAttributes_RejectionHasNoEntity(t *testing.T) {
	attrs := eventAttributes(&service.ModerationEvent{
		Action:       service.ModerationActionRejected,
		Kind:         "zone",
		SubmissionID: 3,
		CityID:       9,
	})

	assert.Equal(t, map[string]string{
		"action":        "rejected",
		"kind":          "zone",
		"submission_id": "3",
		"city_id":       "9",
	}, attrs)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unset provider is noop", cfg: &config.PubSubConfig{}},
		{name: "nil section is noop", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/events"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishModerationEvent(context.Background(), approvedEvent()))
			}
		})
	}
}
