package admin

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/fanout"
	"github.com/nfrund/reservas/internal/middleware"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	ReportsTitle = "Reportes del Sistema"

	MsgUsageFailed          = "Error generando reporte de uso"
	MsgStatisticsFailed     = "Error cargando estadísticas"
	MsgIncidentReportFailed = "Error cargando reporte de incidencias"
)

// Reports renders GET /reportes for ?fecha_inicio=&fecha_fin=, defaulting
// to the last 30 days.
func (h *Handler) Reports(c echo.Context) error {
	ctx := c.Request().Context()
	d := adminpages.ReportsData{Range: h.defaultRange(c.QueryParam("fecha_inicio"), c.QueryParam("fecha_fin"))}

	report := fanout.Run(ctx,
		fanout.Task{Name: "usage", Fn: func(ctx context.Context) (err error) {
			d.Usage, err = h.deps.Reports.Usage(ctx, d.Range)
			return err
		}},
		fanout.Task{Name: "statistics", Fn: func(ctx context.Context) (err error) {
			d.Statistics, err = h.deps.Reports.Statistics(ctx)
			return err
		}},
		fanout.Task{Name: "incidents", Fn: func(ctx context.Context) (err error) {
			d.Incidents, err = h.deps.Reports.Incidents(ctx)
			return err
		}},
	)
	if !report.OK() {
		middleware.FromContext(ctx).Error("Generating reports failed", "failed", report.Failed(), "error", report.Err())
		d.Errors = failureMessages(report.Failed(), map[string]string{
			"usage":      MsgUsageFailed,
			"statistics": MsgStatisticsFailed,
			"incidents":  MsgIncidentReportFailed,
		})
	}

	return h.deps.Layout.Render(c, ReportsTitle, "/reportes", adminpages.Reports(d))
}
