package layouts

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/view"
	"github.com/nfrund/reservas/web/src/templates/partials"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Props is what every page passes to the Base layout.
type Props struct {
	Title  string
	Portal domain.Portal
	// User is nil on public pages.
	User  *domain.Identity
	Flash view.FlashData
	// Active is the nav link to highlight.
	Active string
}

// Base wraps page content in the shared document shell.
func Base(p Props, content ...g.Node) templ.Component {
	return view.Component(Document(p, content...))
}

// Document is Base as a gomponents node.
func Document(p Props, content ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(html.Lang("es"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(CalculateTitle(p.Title, p.Portal.Title))),
				html.StyleEl(g.Raw(stylesheet)),
				html.Script(html.Src(htmxSrc), html.Defer()),
			),
			html.Body(hx.Boost("true"),
				partials.Nav(p.Portal, p.User, p.Active),
				html.Main(html.Class("container"),
					g.If(p.Title != "", html.H1(g.Text(p.Title))),
					partials.Flash(p.Flash),
					g.Group(content),
				),
				html.Footer(html.Class("footer"), g.Text(p.Portal.Title)),
			),
		),
	)
}

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:0;background:#f5f6f8;color:#1f2933}
.navbar{display:flex;align-items:center;gap:1.5rem;padding:.75rem 1.5rem;background:#0b3d91;color:#fff}
.navbar a{color:#fff;text-decoration:none}.brand{font-weight:700}
.nav-links{display:flex;gap:1rem;list-style:none;margin:0;padding:0;flex:1}
.nav-links a.active{text-decoration:underline}.nav-user{display:flex;gap:1rem;align-items:center}
.container{max-width:1100px;margin:0 auto;padding:1.5rem}
.card{background:#fff;border-radius:8px;padding:1rem 1.25rem;margin-bottom:1rem;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.stats{display:grid;grid-template-columns:repeat(auto-fit,minmax(160px,1fr));gap:1rem;margin-bottom:1rem}
.stat strong{display:block;font-size:1.8rem}
table{width:100%;border-collapse:collapse;background:#fff}th,td{padding:.5rem;border-bottom:1px solid #e4e7eb;text-align:left}
td.empty{text-align:center;color:#7b8794}
.field{display:flex;flex-direction:column;margin-bottom:.75rem}.field label{font-weight:600;margin-bottom:.25rem}
form.inline{display:inline}
.btn{padding:.4rem .8rem;border:0;border-radius:4px;cursor:pointer}.btn-primary{background:#0b3d91;color:#fff}
.btn-danger{background:#c81e1e;color:#fff}.btn-ok{background:#2f8132;color:#fff}.btn-link{background:none}
.alert{padding:.75rem 1rem;border-radius:4px;margin-bottom:1rem}.alert-success{background:#e3f9e5}.alert-error{background:#ffe3e3}
.badge{padding:.1rem .5rem;border-radius:999px;background:#e4e7eb;font-size:.85rem}
.badge-ok{background:#c1eac5}.badge-warn{background:#fff3c4}.badge-bad{background:#facdcd}
.footer{text-align:center;color:#7b8794;padding:2rem 0}
`
