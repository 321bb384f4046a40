package admin

import (
	"net/url"
	"sort"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// ReportsData is the view model of the reports page. Any report may be nil
// when its upstream call failed.
type ReportsData struct {
	Range      domain.DateRange
	Usage      *domain.UsageReport
	Statistics *domain.Statistics
	Incidents  *domain.IncidentReport
	Errors     []string
}

// Reports shows usage, statistics and incident summaries for a date range.
func Reports(d ReportsData) g.Node {
	return g.Group{
		g.Map(d.Errors, partials.ErrorBox),
		html.Section(html.Class("card"),
			html.Form(html.Method("get"), html.Action("/reportes"),
				partials.TextInput("fecha_inicio", "Desde", "date", d.Range.From, true),
				partials.TextInput("fecha_fin", "Hasta", "date", d.Range.To, true),
				partials.Submit("Generar"),
			),
			html.P(
				html.A(html.Href("/api/reports/uso?"+url.Values{"fecha_inicio": {d.Range.From}, "fecha_fin": {d.Range.To}}.Encode()), g.Text("Uso (JSON)")),
				g.Text(" · "),
				html.A(html.Href("/api/reports/estadisticas"), g.Text("Estadísticas (JSON)")),
				g.Text(" · "),
				html.A(html.Href("/api/reports/incidencias"), g.Text("Incidencias (JSON)")),
				g.Text(" · "),
				html.A(html.Href("/api/reports/auditoria"), g.Text("Auditoría (JSON)")),
			),
		),
		g.Iff(d.Statistics != nil, func() g.Node { return statisticsSection(d.Statistics) }),
		g.Iff(d.Usage != nil, func() g.Node { return usageSection(d.Usage) }),
		g.Iff(d.Incidents != nil, func() g.Node { return incidentSection(d.Incidents) }),
	}
}

func statisticsSection(s *domain.Statistics) g.Node {
	return html.Section(
		html.H2(g.Text("Estadísticas generales")),
		html.Div(html.Class("stats"),
			statInt("Usuarios activos", s.ActiveUsers),
			statInt("Espacios activos", s.ActiveSpaces),
			statInt("Reservas", s.TotalBookings),
			statInt("Aprobadas", s.ApprovedBookings),
			statInt("Pendientes", s.PendingBookings),
			statInt("Rechazadas", s.RejectedBookings),
			stat("Tasa de aprobación", layouts.Percent(s.ApprovalRate)),
			stat("Tasa de rechazo", layouts.Percent(s.RejectionRate)),
			statInt("Incidencias", s.TotalIncidents),
			statInt("Incidencias abiertas", s.OpenIncidents),
		),
	)
}

func usageSection(u *domain.UsageReport) g.Node {
	return html.Section(html.Class("card"),
		html.H2(g.Text("Uso de espacios")),
		html.Div(html.Class("stats"),
			statInt("Reservas en el período", u.TotalBookings),
			stat("Ocupación", layouts.Percent(u.OccupancyPercent)),
		),
		html.H3(g.Text("Espacios más usados")),
		html.Table(
			headers("Espacio", "Reservas"),
			html.TBody(
				g.If(len(u.TopSpaces) == 0, partials.EmptyRow(2, "Sin datos.")),
				g.Map(u.TopSpaces, func(s domain.SpaceUsage) g.Node {
					return html.Tr(html.Td(g.Text(s.Name)), html.Td(g.Textf("%d", s.Count)))
				}),
			),
		),
		countTable("Reservas por estado", "Estado", u.ByState),
	)
}

func incidentSection(r *domain.IncidentReport) g.Node {
	return html.Section(html.Class("card"),
		html.H2(g.Textf("Incidencias (%d)", r.Total)),
		countTable("Por estado", "Estado", r.ByState),
		countTable("Por tipo", "Tipo", r.ByType),
	)
}

// countTable renders a map of counters sorted by key.
func countTable(title, column string, counts map[string]int) g.Node {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return g.Group{
		html.H3(g.Text(title)),
		html.Table(
			headers(column, "Cantidad"),
			html.TBody(
				g.If(len(keys) == 0, partials.EmptyRow(2, "Sin datos.")),
				g.Map(keys, func(k string) g.Node {
					return html.Tr(html.Td(g.Text(layouts.Label(k))), html.Td(g.Textf("%d", counts[k])))
				}),
			),
		),
	}
}
