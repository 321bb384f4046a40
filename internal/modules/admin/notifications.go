package admin

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/fanout"
	"github.com/nfrund/reservas/internal/middleware"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	NotificationsTitle = "Notificaciones"

	MsgHistoryFailed = "Error cargando historial de notificaciones"
	MsgPendingFailed = "Error cargando notificaciones pendientes"
)

// Notifications renders GET /notificaciones: the filtered history and the
// pending queue, fetched concurrently.
func (h *Handler) Notifications(c echo.Context) error {
	ctx := c.Request().Context()
	d := adminpages.NotificationsData{Filter: domain.NotificationFilter{
		Type: c.QueryParam("tipo"),
		From: c.QueryParam("fecha_inicio"),
		To:   c.QueryParam("fecha_fin"),
	}}

	report := fanout.Run(ctx,
		fanout.Task{Name: "history", Fn: func(ctx context.Context) (err error) {
			d.History, err = h.deps.Notifications.History(ctx, d.Filter)
			return err
		}},
		fanout.Task{Name: "pending", Fn: func(ctx context.Context) (err error) {
			d.Pending, err = h.deps.Notifications.Pending(ctx)
			return err
		}},
	)
	if !report.OK() {
		middleware.FromContext(ctx).Error("Loading notifications failed", "failed", report.Failed(), "error", report.Err())
		d.Errors = failureMessages(report.Failed(), map[string]string{
			"history": MsgHistoryFailed,
			"pending": MsgPendingFailed,
		})
	}

	return h.deps.Layout.Render(c, NotificationsTitle, "/notificaciones", adminpages.Notifications(d))
}
