package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doorstep/config"
	"doorstep/internal/delivery/api/response"
	"doorstep/internal/delivery/api/router"
	"doorstep/internal/delivery/api/router/handler"
	"doorstep/internal/domain/service"
	"doorstep/internal/infra/geo"
	"doorstep/internal/infra/geocoding"
	"doorstep/internal/infra/persistence/memory"
	"doorstep/internal/infra/pubsub"
	"doorstep/internal/infra/qrcode"
	"doorstep/internal/usecase"
	"doorstep/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

func testConfig() *config.Config {
	def := config.DefaultCoordinate()
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			Enabled:  false,
			Timeout:  time.Second,
			Fallback: config.DefaultFallback(),
			Default:  &def,
		},
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	return cfg
}

// newTestAPI wires the whole service with fx, using the in-memory store,
// the offline geocoder and the no-op publisher.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var e *echo.Echo
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Provide(
			context.Background,
			impl.NewWizardPolicy,
			memory.New,
			memory.NewAddressRepository,
			memory.NewSessionRepository,
			geocoding.NewResolver,
			pubsub.NewEventPublisher,
			func(cfg *config.Config) service.QRCodeService {
				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
			},
			geo.NewExporter,
			impl.NewAddressService,
			impl.NewWizardService,
			handler.NewAddressHandler,
			handler.NewSessionHandler,
		),
		fx.Invoke(func(params router.RouterParams) {
			e = newEcho(cfg, logger, params)
		}),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))

	return v
}

func TestAPI_Health(t *testing.T) {
	e := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-123"}}`, rec.Body.String())
}

func TestAPI_UnknownRoute(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}

func TestAPI_ListAddresses(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodGet, "/api/v1/addresses?q=OAK", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)

	list := decode[usecase.AddressList](t, env.Data)
	require.Len(t, list.Addresses, 1)
	assert.Equal(t, "2", list.Addresses[0].Record.ID)
	assert.Equal(t, "Not Started", list.Addresses[0].Label)
	assert.Equal(t, 4, list.Summary.Total)
	assert.Equal(t, 2, list.Summary.Completed)
	assert.Equal(t, 1, list.Summary.InProgress)
	assert.Equal(t, 1, list.Summary.NotStarted)
}

func TestAPI_GetAddress(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodGet, "/api/v1/addresses/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"active":"draw-path"`)
	assert.Contains(t, string(env.Data), `"label":"In Progress (2 steps completed)"`)

	rec, env = do(t, e, http.MethodGet, "/api/v1/addresses/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ADDRESS_NOT_FOUND", env.Error.Code)
}

func TestAPI_UpdateAddress(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodPatch, "/api/v1/addresses/2",
		`{"validated_address":"456 Oak Avenue, Los Angeles, CA 90001","door_position":{"lat":34.05,"lng":-118.24}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[usecase.AddressView](t, env.Data)
	assert.Equal(t, 2, view.Record.StepsCompleted)
	assert.Equal(t, "in-progress", string(view.Record.WizardStatus))
	assert.Equal(t, "456 Oak Ave, Los Angeles, CA 90001", view.Record.GivenAddress)

	rec, env = do(t, e, http.MethodPatch, "/api/v1/addresses/nope", `{"clear_validation":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", env.Error.Code)

	rec, env = do(t, e, http.MethodPatch, "/api/v1/addresses/2", `{"door_position":{"lat":95,"lng":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"door_position.lat"`)

	rec, env = do(t, e, http.MethodPatch, "/api/v1/addresses/2", `{"door_position":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAPI_ValidationCandidates(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodGet, "/api/v1/addresses/2/candidates?q=avenue", "")
	require.Equal(t, http.StatusOK, rec.Code)

	candidates := decode[[]usecase.Candidate](t, env.Data)
	require.Len(t, candidates, 1)
	assert.Equal(t, "456 Oak Ave Avenue, Los Angeles", candidates[0].Address)
}

func TestAPI_ExportGeoJSON(t *testing.T) {
	e := newTestAPI(t)

	rec, _ := do(t, e, http.MethodGet, "/api/v1/addresses/1/geojson", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.MIMEGeoJSON, rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])
	assert.NotEmpty(t, doc["features"])
}

func TestAPI_GenerateQRCode(t *testing.T) {
	e := newTestAPI(t)

	rec, _ := do(t, e, http.MethodGet, "/api/v1/addresses/1/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.MIMEPNG, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	assert.Equal(t, "doorstep://addresses/1", rec.Header().Get("X-Record-Link"))

	rec, env := do(t, e, http.MethodGet, "/api/v1/addresses/1/qr?format=json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"link":"doorstep://addresses/1"`)
}

func TestAPI_SessionFlow(t *testing.T) {
	e := newTestAPI(t)

	rec, env := do(t, e, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[usecase.SessionView](t, env.Data)
	base := "/api/v1/sessions/" + view.Session.ID.String()

	rec, env = do(t, e, http.MethodPost, base+"/events", `{"type":"select-record","record_id":"3"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[usecase.DispatchResult](t, env.Data)
	assert.Equal(t, "3", result.View.Record.ID)
	assert.Equal(t, 3, result.View.Position)

	rec, env = do(t, e, http.MethodPost, base+"/events", `{"type":"select-scenario","scenario":"Door to taxi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"click_intent":"add-path-point"`)

	rec, env = do(t, e, http.MethodPost, base+"/events", `{"type":"map-click","point":{"lat":41.8783,"lng":-87.6296},"panel":"street"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result = decode[usecase.DispatchResult](t, env.Data)
	assert.False(t, result.Ignored)
	assert.Len(t, result.View.Session.PathBuffer, 2)

	rec, env = do(t, e, http.MethodPost, base+"/events", `{"type":"finish-path"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"kind":"scenario-completed"`)

	rec, env = do(t, e, http.MethodPost, base+"/navigate", `{"direction":"next"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result = decode[usecase.DispatchResult](t, env.Data)
	assert.Equal(t, "4", result.View.Record.ID)

	rec, env = do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[usecase.SessionView](t, env.Data)
	assert.Equal(t, "4", view.Session.SelectedID)
}

func TestAPI_SessionErrors(t *testing.T) {
	e := newTestAPI(t)

	_, env := do(t, e, http.MethodPost, "/api/v1/sessions", "")
	view := decode[usecase.SessionView](t, env.Data)
	base := "/api/v1/sessions/" + view.Session.ID.String()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{name: "bad id", method: http.MethodGet, target: "/api/v1/sessions/not-a-uuid", status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "unknown session", method: http.MethodGet, target: "/api/v1/sessions/6f1c1b0e-3a53-4f8e-9d6c-2f1f6b1f0a11", status: http.StatusNotFound, code: "SESSION_NOT_FOUND"},
		{name: "missing type", method: http.MethodPost, target: base + "/events", body: `{}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "unknown type", method: http.MethodPost, target: base + "/events", body: `{"type":"teleport"}`, status: http.StatusBadRequest, code: "UNKNOWN_EVENT"},
		{name: "client geocode result", method: http.MethodPost, target: base + "/events", body: `{"type":"geocode-resolved"}`, status: http.StatusBadRequest, code: "UNKNOWN_EVENT"},
		{name: "click without point", method: http.MethodPost, target: base + "/events", body: `{"type":"map-click"}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "bad panel", method: http.MethodPost, target: base + "/events", body: `{"type":"map-click","point":{"lat":1,"lng":1},"panel":"sky"}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "bad direction", method: http.MethodPost, target: base + "/navigate", body: `{"direction":"up"}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "navigate without selection", method: http.MethodPost, target: base + "/navigate", body: `{"direction":"prev"}`, status: http.StatusConflict, code: "NO_SELECTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAPI_IgnoredEventIsNotAnError(t *testing.T) {
	e := newTestAPI(t)

	_, env := do(t, e, http.MethodPost, "/api/v1/sessions", "")
	view := decode[usecase.SessionView](t, env.Data)

	rec, env := do(t, e, http.MethodPost, "/api/v1/sessions/"+view.Session.ID.String()+"/events",
		`{"type":"answer-elevator","has_elevator":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[usecase.DispatchResult](t, env.Data)
	assert.True(t, result.Ignored)
	assert.Empty(t, result.Signals)
}
