package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/web/src/templates/pages"
)

// HomeHandler serves the public landing page.
type HomeHandler struct {
	layout *Layout
}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler(layout *Layout) *HomeHandler {
	return &HomeHandler{layout: layout}
}

// HomeGet renders GET /. The page is public, so the token is only checked
// for presence, not verified.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	signedIn := middleware.SessionToken(c) != ""
	return h.layout.Render(c, "", "", pages.Home(h.layout.Portal, signedIn))
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Portal string `json:"portal"`
}

// HealthGet reports that the process is serving. Upstream services are not
// probed.
func (h *HomeHandler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Portal: h.layout.Portal.Name})
}
