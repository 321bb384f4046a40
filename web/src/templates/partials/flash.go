package partials

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/view"
)

// Flash renders the queued success and error messages.
func Flash(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return html.Div(html.Class("flash"),
		g.Map(f.Success, func(msg string) g.Node {
			return html.Div(html.Class("alert alert-success"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return html.Div(html.Class("alert alert-error"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
