package admin

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// SpacesData is the view model of the spaces page.
type SpacesData struct {
	Spaces []domain.Space
	Error  string
}

// Spaces lists rooms and courts.
func Spaces(d SpacesData) g.Node {
	return g.Group{
		partials.ErrorBox(d.Error),
		html.Section(html.Class("card"),
			html.H2(g.Text("Nuevo espacio")),
			html.Form(html.Method("post"), html.Action("/espacios/crear"),
				partials.TextInput("nombre", "Nombre", "text", "", true),
				partials.Select("tipo", "Tipo", "", domain.SpaceRoom, domain.SpaceTypes, layouts.Label),
				partials.Field("capacidad", "Capacidad", html.Input(html.ID("capacidad"), html.Name("capacidad"),
					html.Type("number"), html.Min("1"), html.Required())),
				partials.Submit("Crear espacio"),
			),
		),
		html.Section(html.Class("card"),
			html.Table(
				headers("ID", "Nombre", "Tipo", "Capacidad", "Estado", "Acciones"),
				html.TBody(
					g.If(len(d.Spaces) == 0, partials.EmptyRow(6, "No hay espacios.")),
					g.Map(d.Spaces, spaceRow),
				),
			),
		),
	}
}

func spaceRow(s domain.Space) g.Node {
	id := partials.Hidden("space_id", s.ID.String())
	formID := "space-" + s.ID.String()
	return html.Tr(
		html.Td(g.Text(s.ID.String())),
		html.Td(html.Input(g.Attr("form", formID), html.Type("text"), html.Name("nombre"), html.Value(s.Name))),
		html.Td(html.Select(g.Attr("form", formID), html.Name("tipo"),
			g.Map(domain.SpaceTypes, func(t string) g.Node {
				return html.Option(html.Value(t), g.If(t == s.Type, html.Selected()), g.Text(layouts.Label(t)))
			}),
		)),
		html.Td(html.Input(g.Attr("form", formID), html.Type("number"), html.Name("capacidad"),
			html.Min("1"), html.Value(strconv.Itoa(s.Capacity)))),
		html.Td(activeBadge(s.Active)),
		html.Td(
			html.Form(html.ID(formID), html.Class("inline"), html.Method("post"), html.Action("/espacios/actualizar"),
				id,
				html.Button(html.Type("submit"), html.Class("btn btn-link"), g.Text("Guardar")),
			),
			g.If(s.Active, partials.ActionButton("/espacios/desactivar", "Desactivar", "btn btn-danger", "¿Desactivar este espacio?", id)),
			g.If(!s.Active, partials.ActionButton("/espacios/activar", "Activar", "btn btn-ok", "", id)),
		),
	)
}
