package pages

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/view"
)

// ErrorData describes a failed request.
type ErrorData struct {
	Status  int
	Message string
	// RequestID lets users quote the failing request.
	RequestID string
}

// Error is a standalone error page. It avoids the Base layout so that it
// still renders when the failure came from the layout itself.
func Error(d ErrorData) templ.Component {
	status := d.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	msg := d.Message
	if msg == "" {
		msg = "Error interno del servidor"
	}

	return view.Component(html.Doctype(
		html.HTML(html.Lang("es"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.TitleEl(g.Text("Error")),
			),
			html.Body(html.Style("font-family:system-ui,sans-serif;text-align:center;padding:3rem"),
				html.H1(g.Text(strconv.Itoa(status))),
				html.P(g.Text(msg)),
				g.If(d.RequestID != "", html.P(html.Small(g.Text("ID de solicitud: "+d.RequestID)))),
				html.P(html.A(html.Href("/"), g.Text("Volver al inicio"))),
			),
		),
	))
}
