package admin

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// BookingsData is the view model of the bookings page.
type BookingsData struct {
	Bookings []domain.Booking
	// State is the active ?estado= filter, empty for all.
	State string
	Error string
}

// Bookings lists reservations with approve, reject and cancel actions.
func Bookings(d BookingsData) g.Node {
	return g.Group{
		partials.ErrorBox(d.Error),
		html.Section(html.Class("card"),
			html.Form(html.Method("get"), html.Action("/reservas"),
				partials.Select("estado", "Estado", "Todas", d.State, domain.BookingStates, layouts.Label),
				partials.Submit("Filtrar"),
			),
		),
		html.Section(html.Class("card"),
			html.Table(
				headers("ID", "Usuario", "Espacio", "Inicio", "Fin", "Motivo", "Estado", "Acciones"),
				html.TBody(
					g.If(len(d.Bookings) == 0, partials.EmptyRow(8, "No hay reservas.")),
					g.Map(d.Bookings, bookingRow),
				),
			),
		),
	}
}

func bookingRow(b domain.Booking) g.Node {
	id := partials.Hidden("booking_id", b.ID.String())
	return html.Tr(
		html.Td(g.Text(b.ID.String())),
		html.Td(g.Text(b.UserName)),
		html.Td(g.Text(b.SpaceName)),
		html.Td(g.Text(layouts.FormatDateTime(b.Start))),
		html.Td(g.Text(layouts.FormatDateTime(b.End))),
		html.Td(g.Text(deref(b.Reason))),
		html.Td(badge(b.State)),
		html.Td(
			g.If(b.State == domain.BookingPending, g.Group{
				partials.ActionButton("/reservas/aprobar", "Aprobar", "btn btn-ok", "",
					id, partials.Hidden("estado", domain.BookingApproved)),
				html.Form(html.Class("inline"), html.Method("post"), html.Action("/reservas/aprobar"),
					id, partials.Hidden("estado", domain.BookingRejected),
					html.Input(html.Type("text"), html.Name("motivo"), html.Placeholder("Motivo del rechazo")),
					html.Button(html.Type("submit"), html.Class("btn btn-danger"), g.Text("Rechazar")),
				),
			}),
			g.If(b.State == domain.BookingPending || b.State == domain.BookingApproved,
				partials.ActionButton("/reservas/cancelar", "Cancelar", "btn btn-link", "¿Cancelar esta reserva?", id),
			),
		),
	)
}
