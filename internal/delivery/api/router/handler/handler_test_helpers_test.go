package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "safemap/internal/delivery/api/middleware"
	"safemap/internal/delivery/api/validator"
	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

// newTestContext builds a request context. Path params are given as name/value pairs.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := newTestEcho()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-test")

	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func withIdentity(c echo.Context, userID string, roles ...entity.Role) echo.Context {
	deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID, Roles: roles})

	return c
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}
