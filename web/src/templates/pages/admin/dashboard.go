package admin

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// DashboardStats are the counters on top of the admin dashboard.
type DashboardStats struct {
	Users           int
	ActiveUsers     int
	Spaces          int
	ActiveSpaces    int
	Bookings        int
	PendingBookings int
	Incidents       int
	OpenIncidents   int
}

// DashboardData is the view model of the admin dashboard.
type DashboardData struct {
	Stats           DashboardStats
	RecentBookings  []domain.Booking
	RecentIncidents []domain.Incident
	// Errors has one entry per failed upstream call.
	Errors []string
}

// Dashboard is the admin landing page.
func Dashboard(d DashboardData) g.Node {
	s := d.Stats
	return g.Group{
		g.Map(d.Errors, partials.ErrorBox),
		html.Div(html.Class("stats"),
			statInt("Usuarios", s.Users),
			statInt("Usuarios activos", s.ActiveUsers),
			statInt("Espacios", s.Spaces),
			statInt("Espacios activos", s.ActiveSpaces),
			statInt("Reservas", s.Bookings),
			statInt("Reservas pendientes", s.PendingBookings),
			statInt("Incidencias", s.Incidents),
			statInt("Incidencias abiertas", s.OpenIncidents),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Reservas recientes")),
			html.Table(
				headers("ID", "Usuario", "Espacio", "Inicio", "Estado"),
				html.TBody(
					g.If(len(d.RecentBookings) == 0, partials.EmptyRow(5, "Sin reservas.")),
					g.Map(d.RecentBookings, func(b domain.Booking) g.Node {
						return html.Tr(
							html.Td(g.Text(b.ID.String())),
							html.Td(g.Text(b.UserName)),
							html.Td(g.Text(b.SpaceName)),
							html.Td(g.Text(layouts.FormatDateTime(b.Start))),
							html.Td(badge(b.State)),
						)
					}),
				),
			),
			html.A(html.Href("/reservas"), g.Text("Ver todas")),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Incidencias recientes")),
			html.Table(
				headers("ID", "Espacio", "Tipo", "Reportada", "Estado"),
				html.TBody(
					g.If(len(d.RecentIncidents) == 0, partials.EmptyRow(5, "Sin incidencias.")),
					g.Map(d.RecentIncidents, func(i domain.Incident) g.Node {
						return html.Tr(
							html.Td(g.Text(i.ID.String())),
							html.Td(g.Text(i.SpaceName)),
							html.Td(g.Text(layouts.Label(i.Type))),
							html.Td(g.Text(layouts.FormatDateTime(i.ReportedAt))),
							html.Td(badge(i.State)),
						)
					}),
				),
			),
			html.A(html.Href("/incidencias"), g.Text("Ver todas")),
		),
	}
}
