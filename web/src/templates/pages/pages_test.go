package pages

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/domain"
)

func TestError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Error(ErrorData{Status: http.StatusNotFound, Message: "<b>Página no encontrada</b>", RequestID: "req-1"}).Render(context.Background(), &buf))

	body := buf.String()
	assert.Contains(t, body, "<h1>404</h1>")
	assert.Contains(t, body, "&lt;b&gt;Página no encontrada&lt;/b&gt;")
	assert.Contains(t, body, "req-1")
}

func TestErrorDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Error(ErrorData{}).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "<h1>500</h1>")
	assert.Contains(t, buf.String(), "Error interno del servidor")
	assert.NotContains(t, buf.String(), "ID de solicitud")
}

func TestAvailabilityReserveForm(t *testing.T) {
	results := []domain.AvailableSpace{
		{ID: 3, Name: "Aula 3", Type: "aula", Capacity: 30, Available: true},
		{ID: 4, Name: "Lab 4", Type: "laboratorio", Capacity: 20, Available: false},
	}

	t.Run("student", func(t *testing.T) {
		var buf bytes.Buffer
		d := AvailabilityData{Results: results, Start: "2025-03-01T10:00:00", End: "2025-03-01T12:00:00", CanReserve: true}
		require.NoError(t, Availability(d).Render(&buf))

		body := buf.String()
		assert.Contains(t, body, "Aula 3")
		assert.Contains(t, body, `action="/reservar"`)
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`action="/reservar"`)))
	})

	t.Run("admin", func(t *testing.T) {
		var buf bytes.Buffer
		d := AvailabilityData{Results: results, CanReserve: false}
		require.NoError(t, Availability(d).Render(&buf))
		assert.NotContains(t, buf.String(), `action="/reservar"`)
	})

	t.Run("no search yet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Availability(AvailabilityData{}).Render(&buf))
		assert.NotContains(t, buf.String(), "Resultados")
	})
}
