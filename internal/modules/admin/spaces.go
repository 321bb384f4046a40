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
	SpacesTitle = "Gestión de Espacios"
	spacesPath  = "/espacios"

	MsgSpaceCreated       = "Espacio creado exitosamente"
	MsgSpaceCreateFailed  = "Error al crear espacio"
	MsgSpaceUpdated       = "Espacio actualizado exitosamente"
	MsgSpaceUpdateFailed  = "Error al actualizar espacio"
	MsgSpaceActivated     = "Espacio activado exitosamente"
	MsgSpaceDeactivated   = "Espacio desactivado exitosamente"
	MsgSpaceStatusFailed  = "Error al cambiar el estado del espacio"
	MsgSpaceFieldsMissing = "Completa nombre, tipo y capacidad"
)

// Spaces renders GET /espacios.
func (h *Handler) Spaces(c echo.Context) error {
	ctx := c.Request().Context()
	var d adminpages.SpacesData

	spaces, err := h.deps.Spaces.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Loading spaces failed", "error", err)
		d.Error = MsgSpacesFailed
	}
	d.Spaces = spaces

	return h.deps.Layout.Render(c, SpacesTitle, spacesPath, adminpages.Spaces(d))
}

// CreateSpace handles POST /espacios/crear.
func (h *Handler) CreateSpace(c echo.Context) error {
	ctx := c.Request().Context()

	var form SpaceForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, spacesPath, MsgSpaceFieldsMissing)
	}
	space, err := h.deps.Spaces.Create(ctx, domain.CreateSpaceRequest{Name: form.Name, Type: form.Type, Capacity: form.Capacity})
	if err != nil {
		middleware.FromContext(ctx).Error("Creating space failed", "name", form.Name, "error", err)
		return view.RedirectError(c, spacesPath, handlers.UserMessage(MsgSpaceCreateFailed, err))
	}

	ev := domain.ActionEvent{Action: "crear", Target: "espacio", Detail: form.Name}
	if space != nil {
		ev.TargetID = space.ID
	}
	h.published(c, ev)
	return view.RedirectSuccess(c, spacesPath, MsgSpaceCreated)
}

// UpdateSpace handles POST /espacios/actualizar.
func (h *Handler) UpdateSpace(c echo.Context) error {
	ctx := c.Request().Context()

	var form SpaceUpdateForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, spacesPath, MsgSpaceUpdateFailed)
	}
	req, err := form.Request()
	if err != nil {
		return view.RedirectError(c, spacesPath, MsgSpaceUpdateFailed)
	}
	if err := h.deps.Spaces.Update(ctx, form.SpaceID, req); err != nil {
		middleware.FromContext(ctx).Error("Updating space failed", "space_id", form.SpaceID, "error", err)
		return view.RedirectError(c, spacesPath, handlers.UserMessage(MsgSpaceUpdateFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "actualizar", Target: "espacio", TargetID: form.SpaceID})
	return view.RedirectSuccess(c, spacesPath, MsgSpaceUpdated)
}

// ActivateSpace handles POST /espacios/activar.
func (h *Handler) ActivateSpace(c echo.Context) error {
	return h.setSpaceActive(c, true)
}

// DeactivateSpace handles POST /espacios/desactivar.
func (h *Handler) DeactivateSpace(c echo.Context) error {
	return h.setSpaceActive(c, false)
}

func (h *Handler) setSpaceActive(c echo.Context, active bool) error {
	ctx := c.Request().Context()

	var form SpaceIDForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, spacesPath, MsgSpaceStatusFailed)
	}

	action, msg, op := "activar", MsgSpaceActivated, h.deps.Spaces.Activate
	if !active {
		action, msg, op = "desactivar", MsgSpaceDeactivated, h.deps.Spaces.Deactivate
	}
	if err := op(ctx, form.SpaceID); err != nil {
		middleware.FromContext(ctx).Error("Changing space status failed", "space_id", form.SpaceID, "active", active, "error", err)
		return view.RedirectError(c, spacesPath, handlers.UserMessage(MsgSpaceStatusFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: action, Target: "espacio", TargetID: form.SpaceID})
	return view.RedirectSuccess(c, spacesPath, msg)
}
