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

	"doorstep/config"
	"doorstep/internal/domain/constants"
	"doorstep/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.WizardEvent {
	return &service.WizardEvent{
		RequestID:  "req-1",
		SessionID:  "sess-1",
		RecordID:   "3",
		Kind:       "step-completed",
		Step:       "draw-path",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	var got PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishWizardEvent(context.Background(), testEvent()))

	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "3", got.Message.OrderingKey)
	assert.Equal(t, map[string]string{
		"kind":       "step-completed",
		"record_id":  "3",
		"session_id": "sess-1",
		"step":       "draw-path",
		"request_id": "req-1",
	}, got.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.WizardEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishWizardEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishWizardEvent(context.Background(), testEvent()))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
