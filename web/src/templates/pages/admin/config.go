package admin

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// ConfigData is the view model of the configuration page.
type ConfigData struct {
	// Config is nil when it could not be loaded.
	Config *domain.SystemConfig
	Audit  []domain.AuditEntry
	// AuditDate is the active ?fecha= filter.
	AuditDate string
	Errors    []string
}

// Config edits the booking rules and shows the audit log.
func Config(d ConfigData) g.Node {
	cfg := domain.SystemConfig{}
	if d.Config != nil {
		cfg = *d.Config
	}

	return g.Group{
		g.Map(d.Errors, partials.ErrorBox),
		html.Section(html.Class("card"),
			html.H2(g.Text("Reglas de reserva")),
			html.P(html.Small(g.Text("Los campos vacíos no se modifican."))),
			html.Form(html.Method("post"), html.Action("/configuracion/actualizar"),
				numberField("ventana_anticipacion_dias", "Ventana de anticipación (días)", cfg.AdvanceWindowDays, d.Config != nil),
				numberField("max_reservas_usuario", "Máximo de reservas por usuario", cfg.MaxBookingsPerUser, d.Config != nil),
				numberField("duracion_max_horas", "Duración máxima (horas)", cfg.MaxDurationHours, d.Config != nil),
				partials.TextInput("hora_inicio", "Hora de apertura", "time", cfg.OpeningTime, false),
				partials.TextInput("hora_fin", "Hora de cierre", "time", cfg.ClosingTime, false),
				partials.Submit("Guardar"),
			),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Auditoría")),
			html.Form(html.Method("get"), html.Action("/configuracion"),
				partials.TextInput("fecha", "Desde", "date", d.AuditDate, false),
				partials.Submit("Filtrar"),
			),
			html.Table(
				headers("ID", "Tabla", "Acción", "Registro", "Usuario", "Fecha"),
				html.TBody(
					g.If(len(d.Audit) == 0, partials.EmptyRow(6, "Sin registros de auditoría.")),
					g.Map(d.Audit, func(a domain.AuditEntry) g.Node {
						return html.Tr(
							html.Td(g.Text(a.ID.String())),
							html.Td(g.Text(a.Table)),
							html.Td(g.Text(layouts.Label(a.Action))),
							html.Td(g.Text(optionalID(a.RecordID))),
							html.Td(g.Text(optionalID(a.UserID))),
							html.Td(g.Text(layouts.FormatDateTime(a.At))),
						)
					}),
				),
			),
		),
	}
}

func numberField(name, label string, value int, known bool) g.Node {
	v := ""
	if known {
		v = strconv.Itoa(value)
	}
	return partials.Field(name, label, html.Input(html.ID(name), html.Name(name), html.Type("number"), html.Min("0"), html.Value(v)))
}

func optionalID(id *domain.ID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}
