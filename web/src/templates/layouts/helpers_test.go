package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Reservas - Sistema", CalculateTitle("Reservas", "Sistema"))
	assert.Equal(t, "Sistema", CalculateTitle("", "Sistema"))
	assert.Equal(t, "Reservas", CalculateTitle("Reservas", ""))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "En Progreso", Label("en_progreso"))
	assert.Equal(t, "Administrador", Label("administrador"))
	assert.Equal(t, "-", Label(""))
}

func TestFormatDateTime(t *testing.T) {
	tests := map[string]string{
		"2025-03-01T10:00:00":        "01/03/2025 10:00",
		"2025-03-01T10:00:00.123456": "01/03/2025 10:00",
		"2025-03-01T10:00:00Z":       "01/03/2025 10:00",
		"2025-03-01 18:30:00":        "01/03/2025 18:30",
		"2025-03-01":                 "01/03/2025",
		"":                           "-",
		"mañana":                     "mañana",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDateTime(in), in)
	}
}

func TestPercentAndYesNo(t *testing.T) {
	assert.Equal(t, "12.5%", Percent(12.5))
	assert.Equal(t, "Sí", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}
