package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// AvailabilitySearch echoes the submitted search back into the form.
type AvailabilitySearch struct {
	Date      string
	Time      string
	Duration  int
	SpaceType string
}

// AvailabilityData is the view model of the availability page.
type AvailabilityData struct {
	Search AvailabilitySearch
	// Start and End are the computed window, sent along with a reservation.
	Start string
	End   string
	// Results is nil until a search ran.
	Results []domain.AvailableSpace
	Error   string
	// CanReserve adds a reserve form to every free space.
	CanReserve bool
}

// Availability is the space search page.
func Availability(d AvailabilityData) g.Node {
	duration := d.Search.Duration
	if duration <= 0 {
		duration = 1
	}

	return g.Group{
		partials.ErrorBox(d.Error),
		html.Section(html.Class("card"),
			html.Form(html.Method("post"), html.Action("/disponibilidad"),
				partials.TextInput("fecha", "Fecha", "date", d.Search.Date, true),
				partials.TextInput("hora", "Hora de inicio", "time", d.Search.Time, true),
				partials.Field("duracion", "Duración (horas)", html.Input(
					html.ID("duracion"), html.Name("duracion"), html.Type("number"),
					html.Min("1"), html.Max("12"), html.Value(strconv.Itoa(duration)), html.Required(),
				)),
				partials.Select("tipo_espacio", "Tipo de espacio", "Todos", d.Search.SpaceType, domain.SpaceTypes, layouts.Label),
				partials.Submit("Buscar"),
			),
		),
		g.If(d.Results != nil, availabilityResults(d)),
	}
}

func availabilityResults(d AvailabilityData) g.Node {
	cols := 4
	if d.CanReserve {
		cols = 5
	}
	return html.Section(html.Class("card"),
		html.H2(g.Textf("Resultados: %s a %s", layouts.FormatDateTime(d.Start), layouts.FormatDateTime(d.End))),
		html.Table(
			html.THead(html.Tr(
				html.Th(g.Text("Espacio")), html.Th(g.Text("Tipo")), html.Th(g.Text("Capacidad")), html.Th(g.Text("Disponible")),
				g.If(d.CanReserve, html.Th(g.Text("Reservar"))),
			)),
			html.TBody(
				g.If(len(d.Results) == 0, partials.EmptyRow(cols, "No hay espacios para esta búsqueda.")),
				g.Map(d.Results, func(s domain.AvailableSpace) g.Node {
					return html.Tr(
						html.Td(g.Text(s.Name)),
						html.Td(g.Text(layouts.Label(s.Type))),
						html.Td(g.Text(strconv.Itoa(s.Capacity))),
						html.Td(html.Span(html.Class(availableClass(s.Available)), g.Text(layouts.YesNo(s.Available)))),
						g.If(d.CanReserve, html.Td(g.If(s.Available, reserveForm(s, d.Start, d.End)))),
					)
				}),
			),
		),
	)
}

func reserveForm(s domain.AvailableSpace, start, end string) g.Node {
	return html.Form(html.Method("post"), html.Action("/reservar"),
		partials.Hidden("id_espacio", s.ID.String()),
		partials.Hidden("fecha_inicio", start),
		partials.Hidden("fecha_fin", end),
		html.Input(html.Type("text"), html.Name("motivo"), html.Placeholder("Motivo (opcional)")),
		html.Button(html.Type("submit"), html.Class("btn btn-ok"), g.Text("Reservar")),
	)
}

func availableClass(ok bool) string {
	if ok {
		return "badge badge-ok"
	}
	return "badge badge-bad"
}
