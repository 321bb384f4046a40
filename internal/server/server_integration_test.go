package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
)

var (
	ana  = domain.Identity{ID: 7, RUT: "11111111-1", Name: "Ana Pérez", Role: domain.RoleStudent}
	root = domain.Identity{ID: 1, RUT: "99999999-9", Name: "Admin", Role: domain.RoleAdmin}
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h := setupIntegrationTest(t, domain.StudentPortal)

	for _, path := range []string{"/dashboard", "/disponibilidad"} {
		resp := h.get(t, path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
	assert.Empty(t, h.fake.Calls(), "no upstream call without a token")
}

func TestStudentSessionLifecycle(t *testing.T) {
	h := setupIntegrationTest(t, domain.StudentPortal)
	h.fake.Reply(http.MethodGet, "/bookings/user/7", http.StatusOK, `[]`)
	h.fake.Reply(http.MethodGet, "/spaces", http.StatusOK, `[]`)
	h.fake.Reply(http.MethodPost, "/auth/logout", http.StatusOK, `{"ok": true}`)

	h.login(t, "tok-ana", ana)

	resp := h.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Ana Pérez")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp = h.get(t, "/logout")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	call, ok := h.fake.LastCall(http.MethodPost, "/auth/logout")
	require.True(t, ok)
	assert.JSONEq(t, `{"token": "tok-ana"}`, string(call.Body))

	resp = h.get(t, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAdminPortalRejectsStudents(t *testing.T) {
	h := setupIntegrationTest(t, domain.AdminPortal)

	t.Run("login with a student account", func(t *testing.T) {
		h.fake.ReplyJSON(http.MethodPost, "/auth/login", http.StatusOK, map[string]any{
			"ok": true, "token": "tok-ana", "user_info": ana,
		})
		h.fake.Reply(http.MethodPost, "/auth/logout", http.StatusOK, `{"ok": true}`)

		resp := h.postForm(t, "/login", url.Values{"rut": {ana.RUT}, "password": {"secreto"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), handlers.MsgAdminCredentials)
		assert.Len(t, h.fake.CallsTo(http.MethodPost, "/auth/logout"), 1)
	})

	t.Run("existing student token", func(t *testing.T) {
		h.fake.Authenticate("tok-ana", ana)
		req, err := http.NewRequest(http.MethodGet, h.ts.URL+"/dashboard", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "token", Value: "tok-ana"})

		resp, err := h.client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login?error=access_denied", resp.Header.Get("Location"))
	})
}

func TestAdminApproveFlow(t *testing.T) {
	h := setupIntegrationTest(t, domain.AdminPortal)
	h.fake.Reply(http.MethodPost, "/bookings/approve", http.StatusOK, `{"message": "ok"}`)
	h.fake.Reply(http.MethodGet, "/bookings", http.StatusOK, `[]`)

	h.login(t, "tok-root", root)

	resp := h.postForm(t, "/reservas/aprobar", url.Values{"booking_id": {"42"}, "estado": {"aprobada"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/reservas?status=success", resp.Header.Get("Location"))

	call, ok := h.fake.LastCall(http.MethodPost, "/bookings/approve")
	require.True(t, ok)
	body := call.JSON(t)
	assert.EqualValues(t, 42, body["id_reserva"])
	assert.Equal(t, "aprobada", body["estado"])
	assert.EqualValues(t, 1, body["id_administrador"])

	// The flash survives exactly one page view.
	resp = h.get(t, "/reservas?status=success")
	assert.Contains(t, readBody(t, resp), "Reserva aprobada exitosamente")
	resp = h.get(t, "/reservas")
	assert.NotContains(t, readBody(t, resp), "Reserva aprobada exitosamente")
}

func TestPublicRoutes(t *testing.T) {
	h := setupIntegrationTest(t, domain.AdminPortal)

	resp := h.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health handlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, handlers.HealthResponse{Status: "ok", Portal: "admin"}, health)

	resp = h.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	h.login(t, "tok-root", root)
	resp = h.get(t, "/no-existe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Página no encontrada")
}

func TestMetricsEndpoint(t *testing.T) {
	h := setupIntegrationTest(t, domain.StudentPortal)
	h.fake.Reply(http.MethodPost, "/auth/login", http.StatusUnauthorized, `{"detail": "Credenciales inválidas"}`)

	h.postForm(t, "/login", url.Values{"rut": {"1-9"}, "password": {"x"}})

	resp := h.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `reservas_upstream_requests_total{code="401",method="POST",service="auth"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
