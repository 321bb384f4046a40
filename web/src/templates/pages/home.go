package pages

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
)

// Home is the landing page of either portal.
func Home(p domain.Portal, signedIn bool) g.Node {
	intro := "Reserva salas de estudio y canchas deportivas de la universidad."
	if p.RequiredRole != "" {
		intro = "Administra usuarios, espacios, reservas e incidencias del sistema."
	}

	return html.Section(html.Class("card"),
		html.H2(g.Text(p.Title)),
		html.P(g.Text(intro)),
		g.If(!signedIn,
			html.A(html.Class("btn btn-primary"), html.Href("/login"), g.Text("Iniciar sesión")),
		),
		g.If(signedIn,
			html.A(html.Class("btn btn-primary"), html.Href("/dashboard"), g.Text("Ir al panel")),
		),
	)
}
