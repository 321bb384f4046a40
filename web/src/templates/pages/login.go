package pages

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/web/src/templates/partials"
)

// LoginData is the view model of the login form.
type LoginData struct {
	// RUT pre-fills the form after a failed attempt.
	RUT   string
	Error string
}

// Login is the credential form shared by both portals.
func Login(d LoginData) g.Node {
	return html.Section(html.Class("card"),
		partials.ErrorBox(d.Error),
		html.Form(html.Method("post"), html.Action("/login"),
			partials.TextInput("rut", "RUT", "text", d.RUT, true),
			partials.TextInput("password", "Contraseña", "password", "", true),
			partials.Submit("Ingresar"),
		),
	)
}
