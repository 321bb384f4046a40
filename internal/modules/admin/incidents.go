package admin

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	IncidentsTitle = "Gestión de Incidencias"
	incidentsPath  = "/incidencias"

	MsgIncidentResolved      = "Incidencia resuelta exitosamente"
	MsgIncidentResolveFailed = "Error al resolver incidencia"
	MsgSpaceBlocked          = "Espacio bloqueado exitosamente"
	MsgSpaceBlockFailed      = "Error al bloquear espacio"
)

// Incidents renders GET /incidencias.
func (h *Handler) Incidents(c echo.Context) error {
	ctx := c.Request().Context()
	var d adminpages.IncidentsData

	incidents, err := h.deps.Incidents.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Loading incidents failed", "error", err)
		d.Error = MsgIncidentsFailed
	}
	d.Incidents = incidents

	return h.deps.Layout.Render(c, IncidentsTitle, incidentsPath, adminpages.Incidents(d))
}

// ResolveIncident handles POST /incidencias/resolver.
func (h *Handler) ResolveIncident(c echo.Context) error {
	admin, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var form ResolveForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, incidentsPath, MsgIncidentResolveFailed)
	}
	err = h.deps.Incidents.Resolve(ctx, domain.ResolveIncidentRequest{
		IncidentID: form.IncidentID,
		Solution:   form.Solution,
		ResolverID: admin.ID,
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Resolving incident failed", "incident_id", form.IncidentID, "error", err)
		return view.RedirectError(c, incidentsPath, handlers.UserMessage(MsgIncidentResolveFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "resolver", Target: "incidencia", TargetID: form.IncidentID})
	return view.RedirectSuccess(c, incidentsPath, MsgIncidentResolved)
}

// BlockSpace handles POST /incidencias/bloquear.
func (h *Handler) BlockSpace(c echo.Context) error {
	admin, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var form BlockForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, incidentsPath, MsgSpaceBlockFailed)
	}
	err = h.deps.Incidents.Block(ctx, domain.BlockRequest{
		IncidentID: form.IncidentID,
		Start:      withSeconds(form.Start),
		End:        withSeconds(form.End),
		AdminID:    admin.ID,
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Blocking space failed", "incident_id", form.IncidentID, "error", err)
		return view.RedirectError(c, incidentsPath, handlers.UserMessage(MsgSpaceBlockFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "bloquear", Target: "incidencia", TargetID: form.IncidentID})
	return view.RedirectSuccess(c, incidentsPath, MsgSpaceBlocked)
}
