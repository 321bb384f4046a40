package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/web/src/templates/pages"
)

// Availability page messages.
const (
	AvailabilityTitle     = "Consultar Disponibilidad"
	MsgAvailabilityFailed = "Error consultando disponibilidad"
	MsgAvailabilityFields = "Completa fecha, hora y duración (1 a 24 horas)."
)

// SpaceSearcher finds free spaces in a time window.
type SpaceSearcher interface {
	Spaces(ctx context.Context, req domain.SpaceSearch) ([]domain.AvailableSpace, error)
}

// AvailabilityHandler serves the availability search of both portals.
type AvailabilityHandler struct {
	search     SpaceSearcher
	layout     *Layout
	canReserve bool
}

// NewAvailabilityHandler creates an AvailabilityHandler. canReserve adds
// the reserve action to free spaces.
func NewAvailabilityHandler(search SpaceSearcher, layout *Layout, canReserve bool) *AvailabilityHandler {
	return &AvailabilityHandler{search: search, layout: layout, canReserve: canReserve}
}

// Render renders the page with d; handlers outside the search flow use it to
// show an error on the search page.
func (h *AvailabilityHandler) Render(c echo.Context, d pages.AvailabilityData) error {
	d.CanReserve = h.canReserve
	return h.layout.Render(c, AvailabilityTitle, "/disponibilidad", pages.Availability(d))
}

// Get renders GET /disponibilidad with an empty form.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	return h.Render(c, pages.AvailabilityData{})
}

// Post handles POST /disponibilidad.
func (h *AvailabilityHandler) Post(c echo.Context) error {
	var form AvailabilityForm
	bindErr := BindForm(c, &form)

	d := pages.AvailabilityData{Search: pages.AvailabilitySearch{
		Date:      form.Date,
		Time:      form.Time,
		Duration:  form.Duration,
		SpaceType: form.SpaceType,
	}}
	if bindErr != nil {
		d.Error = MsgAvailabilityFields
		return h.Render(c, d)
	}

	start, end, err := form.Window()
	if err != nil {
		d.Error = MsgAvailabilityFields
		return h.Render(c, d)
	}
	d.Start, d.End = start, end

	ctx := c.Request().Context()
	results, err := h.search.Spaces(ctx, domain.SpaceSearch{Type: form.SpaceTypeFilter(), Start: start, End: end})
	if err != nil {
		middleware.FromContext(ctx).Error("Availability search failed", "error", err)
		d.Error = MsgAvailabilityFailed
		return h.Render(c, d)
	}
	if results == nil {
		results = []domain.AvailableSpace{}
	}
	d.Results = results
	return h.Render(c, d)
}
