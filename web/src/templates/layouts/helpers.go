package layouts

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CalculateTitle builds the document title from the page and portal names.
func CalculateTitle(title, portal string) string {
	switch {
	case title == "":
		return portal
	case portal == "":
		return title
	default:
		return title + " - " + portal
	}
}

var titleCaser = cases.Title(language.Spanish)

// Label turns an upstream code such as "en_progreso" into "En Progreso".
func Label(code string) string {
	if code == "" {
		return "-"
	}
	return titleCaser.String(strings.ReplaceAll(code, "_", " "))
}

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
}

// FormatDateTime renders an upstream timestamp as dd/mm/yyyy hh:mm. Values it
// cannot parse are returned as they are.
func FormatDateTime(s string) string {
	if s == "" {
		return "-"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02/01/2006")
	}
	return s
}

// Percent formats a percentage with one decimal.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// YesNo renders a boolean in Spanish.
func YesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// StateClass picks the badge color for a booking, incident or user state.
func StateClass(state string) string {
	switch state {
	case "aprobada", "resuelta", "cerrada", "activo":
		return "badge badge-ok"
	case "pendiente", "en_progreso", "abierta":
		return "badge badge-warn"
	case "rechazada", "cancelada", "bloqueo", "inactivo":
		return "badge badge-bad"
	default:
		return "badge"
	}
}
