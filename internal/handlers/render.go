package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	"github.com/nfrund/reservas/web/src/templates/layouts"
)

// Messages shown when a redirect carries ?status= but no flash survived,
// e.g. because the flash cookie was rejected by the browser.
const (
	FallbackSuccess = "Operación realizada exitosamente"
	FallbackError   = "No se pudo completar la operación"
)

// Layout renders pages inside the portal's Base layout.
type Layout struct {
	Portal domain.Portal
}

// NewLayout creates a Layout for portal.
func NewLayout(portal domain.Portal) *Layout {
	return &Layout{Portal: portal}
}

// Render writes content with status 200, together with the session identity
// and any pending flash messages.
func (l *Layout) Render(c echo.Context, title, active string, content ...g.Node) error {
	return l.RenderStatus(c, http.StatusOK, title, active, content...)
}

// RenderStatus is Render with an explicit status code.
func (l *Layout) RenderStatus(c echo.Context, status int, title, active string, content ...g.Node) error {
	user, _ := middleware.IdentityFrom(c)
	props := layouts.Props{
		Title:  title,
		Portal: l.Portal,
		User:   user,
		Flash:  flashWithStatus(c),
		Active: active,
	}
	return c.Render(status, "", layouts.Base(props, content...))
}

// flashWithStatus returns the pending flash, falling back to a generic
// message when the ?status= indicator has no flash to go with it.
func flashWithStatus(c echo.Context) view.FlashData {
	flash := view.GetFlashData(c)
	if !flash.Empty() {
		return flash
	}
	switch c.QueryParam("status") {
	case view.StatusSuccess:
		flash.Success = append(flash.Success, FallbackSuccess)
	case view.StatusError:
		flash.Error = append(flash.Error, FallbackError)
	}
	return flash
}
