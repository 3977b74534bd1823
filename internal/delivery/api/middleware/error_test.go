package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "safemap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "wrapped app error keeps its code",
			err:      errors.Wrap(domainerrors.ErrAlreadyReviewed, "approve pin 3"),
			wantCode: http.StatusConflict,
			wantBody: `"code":"ALREADY_REVIEWED"`,
		},
		{
			name:     "rate limit",
			err:      echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"),
			wantCode: http.StatusTooManyRequests,
			wantBody: `"code":"TOO_MANY_REQUESTS"`,
		},
		{
			name:     "route not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `"code":"HTTP_ERROR"`,
		},
		{
			name:     "unknown error hides internals",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
