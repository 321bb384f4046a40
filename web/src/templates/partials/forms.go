package partials

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Field wraps an input with its label.
func Field(id, label string, input g.Node) g.Node {
	return html.Div(html.Class("field"),
		html.Label(html.For(id), g.Text(label)),
		input,
	)
}

// TextInput is a labelled text-like input. kind is the input type.
func TextInput(name, label, kind, value string, required bool) g.Node {
	return Field(name, label, html.Input(
		html.ID(name), html.Name(name), html.Type(kind), html.Value(value),
		g.If(required, html.Required()),
	))
}

// Select is a labelled select. An empty first option is added when blank
// is not empty.
func Select(name, label, blank, selected string, values []string, text func(string) string) g.Node {
	return Field(name, label, html.Select(html.ID(name), html.Name(name),
		g.If(blank != "", html.Option(html.Value(""), g.Text(blank))),
		g.Map(values, func(v string) g.Node {
			return html.Option(html.Value(v), g.If(v == selected, html.Selected()), g.Text(text(v)))
		}),
	))
}

// Hidden is a hidden form field.
func Hidden(name, value string) g.Node {
	return html.Input(html.Type("hidden"), html.Name(name), html.Value(value))
}

// ActionButton is a single-button POST form. A non-empty confirm text asks
// the browser for confirmation first.
func ActionButton(action, label, class, confirm string, fields ...g.Node) g.Node {
	return html.Form(html.Class("inline"), html.Method("post"), html.Action(action),
		g.If(confirm != "", hx.Confirm(confirm)),
		g.Group(fields),
		html.Button(html.Type("submit"), html.Class(class), g.Text(label)),
	)
}

// Submit is the submit button of a form.
func Submit(label string) g.Node {
	return html.Button(html.Type("submit"), html.Class("btn btn-primary"), g.Text(label))
}

// ErrorBox renders an inline error for the current request.
func ErrorBox(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return html.Div(html.Class("alert alert-error"), g.Attr("role", "alert"), g.Text(msg))
}

// EmptyRow is a table row spanning cols columns with a placeholder text.
func EmptyRow(cols int, text string) g.Node {
	return html.Tr(html.Td(g.Attr("colspan", strconv.Itoa(cols)), html.Class("empty"), g.Text(text)))
}
