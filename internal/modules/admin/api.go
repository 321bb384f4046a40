package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
)

// MsgReportUnavailable is the JSON error of a failed report relay.
const MsgReportUnavailable = "Error consultando el servicio de reportes"

// relay writes raw upstream JSON unchanged, or a 502 with the error.
func relay(c echo.Context, report string, raw json.RawMessage, err error) error {
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Report relay failed", "report", report, "error", err)
		return c.JSON(http.StatusBadGateway, handlers.ErrorResponse{Error: handlers.UserMessage(MsgReportUnavailable, err)})
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// UsageJSON handles GET /api/reports/uso.
func (h *Handler) UsageJSON(c echo.Context) error {
	rng := h.defaultRange(c.QueryParam("fecha_inicio"), c.QueryParam("fecha_fin"))
	raw, err := h.deps.Reports.UsageRaw(c.Request().Context(), rng)
	return relay(c, "uso", raw, err)
}

// StatisticsJSON handles GET /api/reports/estadisticas.
func (h *Handler) StatisticsJSON(c echo.Context) error {
	raw, err := h.deps.Reports.StatisticsRaw(c.Request().Context())
	return relay(c, "estadisticas", raw, err)
}

// IncidentsJSON handles GET /api/reports/incidencias.
func (h *Handler) IncidentsJSON(c echo.Context) error {
	raw, err := h.deps.Reports.IncidentsRaw(c.Request().Context())
	return relay(c, "incidencias", raw, err)
}

// AuditHistoryJSON handles GET /api/reports/auditoria with the optional
// filters fecha_inicio, fecha_fin, accion and limit.
func (h *Handler) AuditHistoryJSON(c echo.Context) error {
	f := domain.AuditFilter{
		From:   c.QueryParam("fecha_inicio"),
		To:     c.QueryParam("fecha_fin"),
		Action: c.QueryParam("accion"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	raw, err := h.deps.Reports.AuditHistoryRaw(c.Request().Context(), f)
	return relay(c, "auditoria", raw, err)
}

// AuditJSON handles GET /api/reports/audit?fecha=, defaulting to today.
func (h *Handler) AuditJSON(c echo.Context) error {
	date := c.QueryParam("fecha")
	if date == "" {
		date = h.today()
	}
	raw, err := h.deps.Reports.AuditRaw(c.Request().Context(), date)
	return relay(c, "audit", raw, err)
}
