package view_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/reservas/internal/logging"
	"github.com/nfrund/reservas/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the store is on the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Reserva creada")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Success, 1)
		assert.Equal(t, "Reserva creada", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		again := view.GetFlashData(c)
		assert.True(t, again.Empty(), "flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "No se pudo cancelar")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Error, 1)
		assert.Equal(t, "No se pudo cancelar", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("flash cookie is written", func(t *testing.T) {
		c, rec := setupTestContext()
		view.SetFlashSuccess(c, "ok")
		assert.Contains(t, rec.Header().Get("Set-Cookie"), view.FlashSessionName+"=")
	})
}

func TestRedirects(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, rec := setupTestContext()

		require.NoError(t, view.RedirectSuccess(c, "/reservas", "Reserva aprobada"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/reservas?status=success", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []string{"Reserva aprobada"}, view.GetFlashData(c).Success)
	})

	t.Run("error keeps the existing query", func(t *testing.T) {
		c, rec := setupTestContext()

		require.NoError(t, view.RedirectError(c, "/reservas?estado=pendiente", "fallo"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/reservas?estado=pendiente&status=error", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestFlashDataAddError(t *testing.T) {
	var f view.FlashData
	f.AddError("")
	assert.True(t, f.Empty())
	f.AddError("Error al cargar usuarios")
	assert.Equal(t, []string{"Error al cargar usuarios"}, f.Error)
}

func TestFlashWithoutStoreLogsToRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.NotPanics(t, func() { view.SetFlashSuccess(c, "Reserva creada") })
	assert.Contains(t, buf.String(), `"msg":"Flash session unreadable"`)
}

func TestAdapters(t *testing.T) {
	node := html.P(g.Text("hola"))

	var sb strings.Builder
	require.NoError(t, view.Component(node).Render(context.Background(), &sb))
	assert.Equal(t, "<p>hola</p>", sb.String())
}
