// Package admin holds the admin panel pages.
package admin

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/web/src/templates/layouts"
)

func stat(label string, value string) g.Node {
	return html.Div(html.Class("card stat"), html.Strong(g.Text(value)), g.Text(label))
}

func statInt(label string, n int) g.Node {
	return stat(label, strconv.Itoa(n))
}

func badge(state string) g.Node {
	return html.Span(html.Class(layouts.StateClass(state)), g.Text(layouts.Label(state)))
}

func activeBadge(active bool) g.Node {
	if active {
		return badge("activo")
	}
	return badge("inactivo")
}

func headers(names ...string) g.Node {
	return html.THead(html.Tr(g.Map(names, func(n string) g.Node { return html.Th(g.Text(n)) })))
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
