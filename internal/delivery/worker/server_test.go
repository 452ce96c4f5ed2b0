package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doorstep/config"
	"doorstep/internal/delivery/api/response"
	"doorstep/internal/delivery/worker/handler"
	"doorstep/internal/domain/service"
	"doorstep/internal/infra/persistence/memory"
	"doorstep/internal/infra/pubsub"
	"doorstep/internal/usecase"
	"doorstep/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 0, History: 20}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var e *echo.Echo
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Provide(
			memory.NewActivityRepository,
			impl.NewActivityService,
			handler.NewPushHandler,
			handler.NewActivityHandler,
		),
		fx.Invoke(func(push *handler.PushHandler, activity *handler.ActivityHandler) {
			e = newEcho(cfg, logger, push, activity)
		}),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return e
}

// TestWorker_ReceivesLocalPublisherPushes runs the local publisher against
// the worker routes, the way the two processes talk in development.
func TestWorker_ReceivesLocalPublisherPushes(t *testing.T) {
	e := newTestWorker(t)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	events := []*service.WizardEvent{
		{RequestID: "req-1", SessionID: "s1", RecordID: "2", Kind: "step-completed", Step: "validation", OccurredAt: time.Now()},
		{RequestID: "req-2", SessionID: "s1", RecordID: "2", Kind: "step-completed", Step: "place-door", OccurredAt: time.Now()},
		{RequestID: "req-3", SessionID: "s1", RecordID: "3", Kind: "scenario-completed", Scenario: "Door to taxi", OccurredAt: time.Now()},
	}
	for _, event := range events {
		require.NoError(t, publisher.PublishWizardEvent(ctx, event))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity?record_id=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data usecase.ActivityFeed `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "place-door", body.Data.Items[0].Step, "newest first")
	assert.Equal(t, "req-2", body.Data.Items[0].RequestID)
	assert.Equal(t, map[string]int{"step-completed": 2}, body.Data.Counts)
}

func TestWorker_Routes(t *testing.T) {
	e := newTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity?limit=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "INVALID_LIMIT", errBody.Error.Code)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(`{"message":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
