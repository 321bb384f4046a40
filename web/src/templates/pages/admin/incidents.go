package admin

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// IncidentsData is the view model of the incidents page.
type IncidentsData struct {
	Incidents []domain.Incident
	Error     string
}

// Incidents lists reported incidents with resolve and block actions.
func Incidents(d IncidentsData) g.Node {
	return g.Group{
		partials.ErrorBox(d.Error),
		html.Section(html.Class("card"),
			html.Table(
				headers("ID", "Espacio", "Tipo", "Descripción", "Reportada por", "Fecha", "Estado", "Acciones"),
				html.TBody(
					g.If(len(d.Incidents) == 0, partials.EmptyRow(8, "No hay incidencias.")),
					g.Map(d.Incidents, incidentRow),
				),
			),
		),
	}
}

func incidentRow(i domain.Incident) g.Node {
	id := partials.Hidden("incident_id", i.ID.String())
	return html.Tr(
		html.Td(g.Text(i.ID.String())),
		html.Td(g.Text(i.SpaceName)),
		html.Td(g.Text(layouts.Label(i.Type))),
		html.Td(g.Text(i.Description)),
		html.Td(g.Text(i.ReporterName)),
		html.Td(g.Text(layouts.FormatDateTime(i.ReportedAt))),
		html.Td(badge(i.State)),
		html.Td(g.If(i.Open(), g.Group{
			html.Form(html.Method("post"), html.Action("/incidencias/resolver"),
				id,
				html.Input(html.Type("text"), html.Name("solucion"), html.Placeholder("Solución"), html.Required()),
				html.Button(html.Type("submit"), html.Class("btn btn-ok"), g.Text("Resolver")),
			),
			html.Form(html.Method("post"), html.Action("/incidencias/bloquear"),
				id,
				html.Input(html.Type("datetime-local"), html.Name("fecha_inicio"), html.Required()),
				html.Input(html.Type("datetime-local"), html.Name("fecha_fin"), html.Required()),
				html.Button(html.Type("submit"), html.Class("btn btn-danger"), g.Text("Bloquear espacio")),
			),
		})),
	)
}
