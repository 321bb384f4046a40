package admin

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// NotificationTypes are the filter options of the history table.
var NotificationTypes = []string{"creacion", "aprobacion", "rechazo", "cancelacion", "bloqueo"}

// NotificationsData is the view model of the notifications page.
type NotificationsData struct {
	Filter  domain.NotificationFilter
	History []domain.Notification
	Pending []domain.Notification
	Errors  []string
}

// Notifications shows pending deliveries and the filtered history.
func Notifications(d NotificationsData) g.Node {
	return g.Group{
		g.Map(d.Errors, partials.ErrorBox),
		html.Section(html.Class("card"),
			html.H2(g.Textf("Pendientes (%d)", len(d.Pending))),
			notificationTable(d.Pending, "No hay notificaciones pendientes."),
		),
		html.Section(html.Class("card"),
			html.H2(g.Text("Historial")),
			html.Form(html.Method("get"), html.Action("/notificaciones"),
				partials.Select("tipo", "Tipo", "Todos", d.Filter.Type, NotificationTypes, layouts.Label),
				partials.TextInput("fecha_inicio", "Desde", "date", d.Filter.From, false),
				partials.TextInput("fecha_fin", "Hasta", "date", d.Filter.To, false),
				partials.Submit("Filtrar"),
			),
			notificationTable(d.History, "Sin notificaciones."),
		),
	}
}

func notificationTable(ns []domain.Notification, empty string) g.Node {
	return html.Table(
		headers("ID", "Tipo", "Destinatario", "Asunto", "Reserva", "Creada", "Enviada"),
		html.TBody(
			g.If(len(ns) == 0, partials.EmptyRow(7, empty)),
			g.Map(ns, func(n domain.Notification) g.Node {
				return html.Tr(
					html.Td(g.Text(n.ID.String())),
					html.Td(g.Text(layouts.Label(n.Type))),
					html.Td(g.Text(n.Recipient)),
					html.Td(g.Text(n.Subject)),
					html.Td(g.Text(optionalID(n.BookingID))),
					html.Td(g.Text(layouts.FormatDateTime(n.CreatedAt))),
					html.Td(g.If(n.Sent, g.Text(layouts.FormatDateTime(n.SentAt))), g.If(!n.Sent, g.Text("No"))),
				)
			}),
		),
	)
}
