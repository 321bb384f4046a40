package partials

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
)

// NavLink is one entry of the top navigation.
type NavLink struct {
	Href  string
	Label string
}

// StudentLinks is the student portal navigation.
var StudentLinks = []NavLink{
	{"/dashboard", "Mis reservas"},
	{"/disponibilidad", "Disponibilidad"},
}

// AdminLinks is the admin panel navigation.
var AdminLinks = []NavLink{
	{"/dashboard", "Dashboard"},
	{"/usuarios", "Usuarios"},
	{"/espacios", "Espacios"},
	{"/reservas", "Reservas"},
	{"/incidencias", "Incidencias"},
	{"/disponibilidad", "Disponibilidad"},
	{"/configuracion", "Configuración"},
	{"/reportes", "Reportes"},
	{"/notificaciones", "Notificaciones"},
}

// LinksFor returns the navigation of a portal.
func LinksFor(p domain.Portal) []NavLink {
	if p.Name == domain.AdminPortal.Name {
		return AdminLinks
	}
	return StudentLinks
}

// Nav renders the header bar. Anonymous visitors only get the login link.
func Nav(p domain.Portal, user *domain.Identity, active string) g.Node {
	return html.Nav(html.Class("navbar"),
		html.A(html.Class("brand"), html.Href("/"), g.Text(p.Title)),
		g.If(user != nil, g.Group{
			html.Ul(html.Class("nav-links"),
				g.Map(LinksFor(p), func(l NavLink) g.Node {
					return html.Li(html.A(
						html.Href(l.Href),
						g.If(l.Href == active, html.Class("active")),
						g.Text(l.Label),
					))
				}),
			),
			html.Div(html.Class("nav-user"),
				html.Span(g.Text(userName(user))),
				html.A(html.Class("btn btn-link"), html.Href("/logout"), g.Text("Cerrar sesión")),
			),
		}),
		g.If(user == nil,
			html.A(html.Class("btn btn-primary"), html.Href("/login"), g.Text("Iniciar sesión")),
		),
	)
}

func userName(u *domain.Identity) string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.RUT
}
