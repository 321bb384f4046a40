package admin

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/web/src/templates/layouts"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

// UsersData is the view model of the users page.
type UsersData struct {
	Users []domain.User
	Error string
}

// Users lists accounts with their role and activation actions.
func Users(d UsersData) g.Node {
	return g.Group{
		partials.ErrorBox(d.Error),
		html.Section(html.Class("card"),
			html.H2(g.Text("Nuevo usuario")),
			html.Form(html.Method("post"), html.Action("/usuarios/crear"),
				partials.TextInput("rut", "RUT", "text", "", true),
				partials.TextInput("nombre", "Nombre", "text", "", true),
				partials.TextInput("correo_institucional", "Correo institucional", "email", "", true),
				partials.Select("tipo_usuario", "Rol", "", domain.RoleStudent, domain.Roles, layouts.Label),
				partials.Submit("Crear usuario"),
			),
		),
		html.Section(html.Class("card"),
			html.Table(
				headers("ID", "RUT", "Nombre", "Correo", "Rol", "Estado", "Acciones"),
				html.TBody(
					g.If(len(d.Users) == 0, partials.EmptyRow(7, "No hay usuarios.")),
					g.Map(d.Users, userRow),
				),
			),
		),
	}
}

func userRow(u domain.User) g.Node {
	id := partials.Hidden("user_id", u.ID.String())
	return html.Tr(
		html.Td(g.Text(u.ID.String())),
		html.Td(g.Text(u.RUT)),
		html.Td(
			html.Form(html.Class("inline"), html.Method("post"), html.Action("/usuarios/actualizar"),
				id,
				html.Input(html.Type("text"), html.Name("nombre"), html.Value(u.Name)),
				html.Button(html.Type("submit"), html.Class("btn btn-link"), g.Text("Guardar")),
			),
		),
		html.Td(g.Text(u.Email)),
		html.Td(
			html.Form(html.Class("inline"), html.Method("post"), html.Action("/usuarios/cambiar-rol"),
				id,
				html.Select(html.Name("new_role"),
					g.Map(domain.Roles, func(r string) g.Node {
						return html.Option(html.Value(r), g.If(r == u.Role, html.Selected()), g.Text(layouts.Label(r)))
					}),
				),
				html.Button(html.Type("submit"), html.Class("btn btn-link"), g.Text("Cambiar")),
			),
		),
		html.Td(activeBadge(u.Active)),
		html.Td(
			g.If(u.Active, partials.ActionButton("/usuarios/desactivar", "Desactivar", "btn btn-danger", "¿Desactivar este usuario?", id)),
			g.If(!u.Active, partials.ActionButton("/usuarios/activar", "Activar", "btn btn-ok", "", id)),
		),
	)
}
