// Package student holds the student portal pages.
package student

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// DashboardData is the view model of the student dashboard.
type DashboardData struct {
	User     *domain.Identity
	Bookings []domain.Booking
	Spaces   []domain.Space
	Error    string
}

// Dashboard lists the student's bookings and offers the incident form.
func Dashboard(d DashboardData) g.Node {
	pending, approved := 0, 0
	for _, b := range d.Bookings {
		switch b.State {
		case domain.BookingPending:
			pending++
		case domain.BookingApproved:
			approved++
		}
	}

	return g.Group{
		partials.ErrorBox(d.Error),
		html.Div(html.Class("stats"),
			stat("Reservas", len(d.Bookings)),
			stat("Pendientes", pending),
			stat("Aprobadas", approved),
			stat("Espacios", len(d.Spaces)),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Mis reservas")),
			html.A(html.Class("btn btn-primary"), html.Href("/disponibilidad"), g.Text("Nueva reserva")),
			bookingsTable(d.Bookings),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Reportar incidencia")),
			incidentForm(d.Spaces),
		),
	}
}

func stat(label string, n int) g.Node {
	return html.Div(html.Class("card stat"), html.Strong(g.Text(strconv.Itoa(n))), g.Text(label))
}

func bookingsTable(bookings []domain.Booking) g.Node {
	return html.Table(
		html.THead(html.Tr(
			html.Th(g.Text("Espacio")), html.Th(g.Text("Inicio")), html.Th(g.Text("Fin")),
			html.Th(g.Text("Estado")), html.Th(g.Text("Motivo")), html.Th(),
		)),
		html.TBody(
			g.If(len(bookings) == 0, partials.EmptyRow(6, "Aún no tienes reservas.")),
			g.Map(bookings, func(b domain.Booking) g.Node {
				return html.Tr(
					html.Td(g.Text(spaceName(b))),
					html.Td(g.Text(layouts.FormatDateTime(b.Start))),
					html.Td(g.Text(layouts.FormatDateTime(b.End))),
					html.Td(html.Span(html.Class(layouts.StateClass(b.State)), g.Text(layouts.Label(b.State)))),
					html.Td(g.Text(deref(b.Reason))),
					html.Td(g.If(cancellable(b),
						partials.ActionButton("/cancelar-reserva", "Cancelar", "btn btn-danger", "¿Cancelar esta reserva?",
							partials.Hidden("booking_id", b.ID.String())),
					)),
				)
			}),
		),
	)
}

func incidentForm(spaces []domain.Space) g.Node {
	if len(spaces) == 0 {
		return html.P(g.Text("No hay espacios disponibles para reportar."))
	}
	return html.Form(html.Method("post"), html.Action("/incidencias/reportar"),
		partials.Field("id_espacio", "Espacio", html.Select(html.ID("id_espacio"), html.Name("id_espacio"), html.Required(),
			g.Map(spaces, func(s domain.Space) g.Node {
				return html.Option(html.Value(s.ID.String()), g.Text(s.Name))
			}),
		)),
		partials.Select("tipo_incidencia", "Tipo", "", "", domain.IncidentTypes, layouts.Label),
		partials.Field("descripcion", "Descripción", html.Textarea(html.ID("descripcion"), html.Name("descripcion"), html.Rows("3"), html.Required())),
		partials.Submit("Reportar"),
	)
}

func cancellable(b domain.Booking) bool {
	return b.State == domain.BookingPending || b.State == domain.BookingApproved
}

func spaceName(b domain.Booking) string {
	if b.SpaceName != "" {
		return b.SpaceName
	}
	return "Espacio #" + b.SpaceID.String()
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
