package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/rendering"
)

func newErrorEcho(t *testing.T) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, nil))
	original := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(original) })

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)
	return e, &logBuffer
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e, logs := newErrorEcho(t)
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	rec := serve(e, http.MethodGet, "/test-unhandled-error")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgInternalError)
	assert.NotContains(t, rec.Body.String(), "deliberate", "details must not leak to the page")

	out := logs.String()
	assert.Contains(t, out, "Internal Server Error (Unhandled)")
	assert.Contains(t, out, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, out, "stack_trace=")
	assert.Contains(t, out, "runtime/debug/stack.go")
}

func TestHTTPErrorHandler_KeepsNotFoundAndMethodNotAllowed(t *testing.T) {
	e, _ := newErrorEcho(t)
	e.GET("/solo-get", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")

	rec = serve(e, http.MethodPost, "/solo-get")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPErrorHandler_OtherHTTPErrorsBecome500(t *testing.T) {
	e, _ := newErrorEcho(t)
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := serve(e, http.MethodGet, "/teapot")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgInternalError)
}
