package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/testutils"
)

func newAvailabilityEcho(t *testing.T, canReserve bool) (*echo.Echo, *testutils.FakeUpstream) {
	t.Helper()
	fake := testutils.NewFakeUpstream(t)
	e := testutils.NewEcho(t)
	e.Validator = handlers.NewValidator()

	h := handlers.NewAvailabilityHandler(fake.Clients().Availability, handlers.NewLayout(domain.StudentPortal), canReserve)
	e.GET("/disponibilidad", h.Get)
	e.POST("/disponibilidad", h.Post)
	return e, fake
}

func TestAvailabilitySearch(t *testing.T) {
	t.Run("builds the window and lists results", func(t *testing.T) {
		e, fake := newAvailabilityEcho(t, true)
		fake.Reply(http.MethodPost, "/availability/spaces", http.StatusOK,
			`[{"id": 3, "nombre": "Sala Azul", "tipo": "sala", "capacidad": 8, "disponible": true}]`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/disponibilidad", Form: url.Values{
			"fecha": {"2025-03-01"}, "hora": {"23:00"}, "duracion": {"2"}, "tipo_espacio": {"sala"},
		}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sala Azul")
		assert.Contains(t, rec.Body.String(), `action="/reservar"`)

		call, ok := fake.LastCall(http.MethodPost, "/availability/spaces")
		require.True(t, ok)
		assert.JSONEq(t, `{"tipo": "sala", "fecha_inicio": "2025-03-01T23:00:00", "fecha_fin": "2025-03-02T01:00:00"}`, string(call.Body))
	})

	t.Run("empty type searches everything", func(t *testing.T) {
		e, fake := newAvailabilityEcho(t, false)
		fake.Reply(http.MethodPost, "/availability/spaces", http.StatusOK, `[]`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/disponibilidad", Form: url.Values{
			"fecha": {"2025-03-01"}, "hora": {"10:00"}, "duracion": {"1"},
		}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No hay espacios para esta búsqueda.")
		assert.NotContains(t, rec.Body.String(), `action="/reservar"`)

		call, _ := fake.LastCall(http.MethodPost, "/availability/spaces")
		assert.Nil(t, call.JSON(t)["tipo"])
	})

	t.Run("upstream failure renders the error with status 200", func(t *testing.T) {
		e, fake := newAvailabilityEcho(t, true)
		fake.Reply(http.MethodPost, "/availability/spaces", http.StatusInternalServerError, `{"detail": "db down"}`)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/disponibilidad", Form: url.Values{
			"fecha": {"2025-03-01"}, "hora": {"10:00"}, "duracion": {"1"},
		}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgAvailabilityFailed)
	})

	t.Run("invalid form never reaches upstream", func(t *testing.T) {
		e, fake := newAvailabilityEcho(t, true)

		rec := testutils.Serve(e, testutils.Request{Method: http.MethodPost, Path: "/disponibilidad", Form: url.Values{
			"fecha": {"2025-03-01"}, "hora": {"10:00"}, "duracion": {"0"},
		}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgAvailabilityFields)
		assert.Empty(t, fake.Calls())
	})
}

func TestAvailabilityFormWindow(t *testing.T) {
	start, end, err := handlers.AvailabilityForm{Date: "2025-12-31", Time: "22:30", Duration: 3}.Window()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31T22:30:00", start)
	assert.Equal(t, "2026-01-01T01:30:00", end)

	_, _, err = handlers.AvailabilityForm{Date: "31/12/2025", Time: "22:30", Duration: 1}.Window()
	assert.True(t, handlers.MissingFields(err))
}
