package admin

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/fanout"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	ConfigTitle = "Configuración del Sistema"
	configPath  = "/configuracion"

	MsgConfigFailed       = "Error cargando configuración"
	MsgAuditFailed        = "Error cargando auditoría"
	MsgConfigUpdated      = "Configuración actualizada exitosamente"
	MsgConfigUpdateFailed = "Error al actualizar configuración"
	MsgConfigEmpty        = "No hay cambios para guardar"
)

// Config renders GET /configuracion: the booking rules and the audit log,
// fetched concurrently. ?fecha= narrows the audit log.
func (h *Handler) Config(c echo.Context) error {
	ctx := c.Request().Context()
	d := adminpages.ConfigData{AuditDate: c.QueryParam("fecha")}

	report := fanout.Run(ctx,
		fanout.Task{Name: "config", Fn: func(ctx context.Context) (err error) {
			d.Config, err = h.deps.Settings.Config(ctx)
			return err
		}},
		fanout.Task{Name: "audit", Fn: func(ctx context.Context) (err error) {
			d.Audit, err = h.deps.Settings.AuditLog(ctx, d.AuditDate)
			return err
		}},
	)
	if !report.OK() {
		middleware.FromContext(ctx).Error("Loading configuration failed", "failed", report.Failed(), "error", report.Err())
		d.Errors = failureMessages(report.Failed(), map[string]string{
			"config": MsgConfigFailed,
			"audit":  MsgAuditFailed,
		})
	}

	return h.deps.Layout.Render(c, ConfigTitle, configPath, adminpages.Config(d))
}

// UpdateConfig handles POST /configuracion/actualizar. Only the fields the
// administrator filled in are sent.
func (h *Handler) UpdateConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var form ConfigForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, configPath, MsgConfigUpdateFailed)
	}
	update, err := form.Update()
	if err != nil {
		middleware.FromContext(ctx).Warn("Invalid configuration form", "error", err)
		return view.RedirectError(c, configPath, MsgConfigUpdateFailed)
	}
	if update.Empty() {
		return view.RedirectError(c, configPath, MsgConfigEmpty)
	}
	if err := h.deps.Settings.UpdateConfig(ctx, update); err != nil {
		middleware.FromContext(ctx).Error("Updating configuration failed", "error", err)
		return view.RedirectError(c, configPath, handlers.UserMessage(MsgConfigUpdateFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "actualizar", Target: "configuracion"})
	return view.RedirectSuccess(c, configPath, MsgConfigUpdated)
}
