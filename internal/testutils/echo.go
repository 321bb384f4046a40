package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/reservas/internal/rendering"
)

// NewEcho returns an echo instance with the cookie session store and the
// component renderer, the minimum handlers need to render pages. Panics are
// recovered into 500 responses as in the servers.
func NewEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(echomw.Recover())
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(SessionSecret))))
	return e
}

// Request describes one request sent through Serve.
type Request struct {
	Method string
	Path   string
	// Form is sent url-encoded when set.
	Form url.Values
	// Token is sent as the session cookie when set.
	Token string
}

// Serve sends r through e and returns the recorded response.
func Serve(e *echo.Echo, r Request) *httptest.ResponseRecorder {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var req *http.Request
	if r.Form != nil {
		req = httptest.NewRequest(method, r.Path, strings.NewReader(r.Form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, r.Path, nil)
	}
	if r.Token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: r.Token})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
