package student_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/modules/student"
	"github.com/nfrund/reservas/internal/testutils"
)

const token = "student-token"

var ana = domain.Identity{ID: 7, RUT: "11111111-1", Name: "Ana Pérez", Role: domain.RoleStudent}

func setup(t *testing.T) (*echo.Echo, *testutils.FakeUpstream) {
	t.Helper()
	fake := testutils.NewFakeUpstream(t)
	fake.Authenticate(token, ana)
	clients := fake.Clients()

	e := testutils.NewEcho(t)
	e.Validator = handlers.NewValidator()
	g := e.Group("", middleware.Session(clients.Auth, domain.StudentPortal.Allows))

	student.NewHandler(student.Dependencies{
		Bookings:     clients.Bookings,
		Spaces:       clients.Spaces,
		Incidents:    clients.Incidents,
		Availability: clients.Availability,
		Layout:       handlers.NewLayout(domain.StudentPortal),
	}).Routes(g)
	return e, fake
}

func TestDashboard(t *testing.T) {
	t.Run("renders bookings and spaces", func(t *testing.T) {
		e, fake := setup(t)
		fake.Reply(http.MethodGet, "/bookings/user/7", http.StatusOK,
			`[{"id": 1, "id_usuario": 7, "id_espacio": 3, "fecha_inicio": "2025-03-01T10:00:00", "fecha_fin": "2025-03-01T11:00:00", "estado": "pendiente", "espacio_nombre": "Sala Azul"}]`)
		fake.Reply(http.MethodGet, "/spaces", http.StatusOK,
			`[{"id": 3, "nombre": "Sala Azul", "tipo": "sala", "capacidad": 8, "activo": true}]`)

		rec := testutils.Serve(e, testutils.Request{Path: "/dashboard", Token: token})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Sala Azul")
		assert.Contains(t, body, `action="/cancelar-reserva"`)
		assert.Contains(t, body, `action="/incidencias/reportar"`)
		assert.NotContains(t, body, student.MsgDashboardFailed)
	})

	t.Run("a failed fetch keeps the other one", func(t *testing.T) {
		e, fake := setup(t)
		fake.Reply(http.MethodGet, "/bookings/user/7", http.StatusServiceUnavailable, `{"detail": "down"}`)
		fake.Reply(http.MethodGet, "/spaces", http.StatusOK,
			`[{"id": 3, "nombre": "Cancha Norte", "tipo": "cancha", "capacidad": 20, "activo": true}]`)

		rec := testutils.Serve(e, testutils.Request{Path: "/dashboard", Token: token})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), student.MsgDashboardFailed)
		assert.Contains(t, rec.Body.String(), "Cancha Norte")
	})

	t.Run("without a session redirects to login", func(t *testing.T) {
		e, fake := setup(t)

		rec := testutils.Serve(e, testutils.Request{Path: "/dashboard"})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, fake.CallsTo(http.MethodGet, "/spaces"))
	})
}

func TestReserve(t *testing.T) {
	form := url.Values{
		"id_espacio":   {"3"},
		"fecha_inicio": {"2025-03-01T10:00:00"},
		"fecha_fin":    {"2025-03-01T12:00:00"},
		"motivo":       {"Estudio"},
	}

	t.Run("creates the booking for the session user", func(t *testing.T) {
		e, fake := setup(t)
		fake.Reply(http.MethodPost, "/bookings/create", http.StatusOK, `{"id": 99, "estado": "pendiente"}`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/reservar", Form: form, Token: token})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard?status=success", rec.Header().Get(echo.HeaderLocation))

		call, ok := fake.LastCall(http.MethodPost, "/bookings/create")
		require.True(t, ok)
		assert.JSONEq(t, `{"id_usuario": 7, "id_espacio": 3, "fecha_inicio": "2025-03-01T10:00:00", "fecha_fin": "2025-03-01T12:00:00", "motivo": "Estudio"}`, string(call.Body))
		assert.Equal(t, "Bearer "+token, call.Authorization)
	})

	t.Run("missing fields re-render the search page", func(t *testing.T) {
		e, fake := setup(t)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/reservar", Token: token,
			Form: url.Values{"id_espacio": {"3"}}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), student.MsgReserveMissing)
		assert.Empty(t, fake.CallsTo(http.MethodPost, "/bookings/create"))
	})

	t.Run("upstream rejection shows its detail", func(t *testing.T) {
		e, fake := setup(t)
		fake.Reply(http.MethodPost, "/bookings/create", http.StatusBadRequest, `{"detail": "Espacio no disponible"}`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/reservar", Form: form, Token: token})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), student.MsgReserveFailed+": Espacio no disponible")
	})
}

func TestCancelBooking(t *testing.T) {
	e, fake := setup(t)
	fake.Reply(http.MethodDelete, "/bookings/15", http.StatusOK, `{"message": "ok"}`)

	rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/cancelar-reserva", Token: token,
		Form: url.Values{"booking_id": {"15"}}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard?status=success", rec.Header().Get(echo.HeaderLocation))
	assert.Len(t, fake.CallsTo(http.MethodDelete, "/bookings/15"), 1)

	rec = testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/cancelar-reserva", Token: token,
		Form: url.Values{"booking_id": {"16"}}})
	assert.Equal(t, "/dashboard?status=error", rec.Header().Get(echo.HeaderLocation))
}

func TestReportIncident(t *testing.T) {
	t.Run("reports as the session user", func(t *testing.T) {
		e, fake := setup(t)
		fake.Reply(http.MethodPost, "/incidents/report", http.StatusOK, `{"id": 4}`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/incidencias/reportar", Token: token,
			Form: url.Values{"id_espacio": {"3"}, "tipo_incidencia": {"equipamiento"}, "descripcion": {"Proyector roto"}}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard?status=success", rec.Header().Get(echo.HeaderLocation))

		call, ok := fake.LastCall(http.MethodPost, "/incidents/report")
		require.True(t, ok)
		assert.JSONEq(t, `{"id_espacio": 3, "tipo_incidencia": "equipamiento", "descripcion": "Proyector roto", "id_usuario_reporta": 7}`, string(call.Body))
	})

	t.Run("incomplete form is an error redirect", func(t *testing.T) {
		e, fake := setup(t)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/incidencias/reportar", Token: token,
			Form: url.Values{"id_espacio": {"3"}}})
		assert.Equal(t, "/dashboard?status=error", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, fake.CallsTo(http.MethodPost, "/incidents/report"))
	})
}
