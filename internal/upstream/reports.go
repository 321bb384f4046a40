package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Reports talks to the reports service. The Raw variants relay the upstream
// JSON untouched for the /api/reports passthrough endpoints.
type Reports struct{ c Caller }

func usageCall(r domain.DateRange) gateway.Call {
	return gateway.Post(gateway.Reports, "/reports/uso", r)
}

func auditReportCall(date string) gateway.Call {
	return gateway.Post(gateway.Reports, "/reports/audit", map[string]string{"fecha": date})
}

func auditHistoryCall(f domain.AuditFilter) gateway.Call {
	q := url.Values{}
	setIf(q, "fecha_inicio", f.From)
	setIf(q, "fecha_fin", f.To)
	setIf(q, "accion", f.Action)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return gateway.Get(gateway.Reports, "/reports/auditoria", q)
}

var (
	statisticsCall     = gateway.Get(gateway.Reports, "/reports/estadisticas", nil)
	incidentReportCall = gateway.Get(gateway.Reports, "/reports/incidencias", nil)
)

// Usage summarizes bookings in a date range.
func (r *Reports) Usage(ctx context.Context, rng domain.DateRange) (*domain.UsageReport, error) {
	var out domain.UsageReport
	if err := r.c.Do(ctx, usageCall(rng), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Statistics returns system-wide totals.
func (r *Reports) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var out domain.Statistics
	if err := r.c.Do(ctx, statisticsCall, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Incidents groups incidents by state and type.
func (r *Reports) Incidents(ctx context.Context) (*domain.IncidentReport, error) {
	var out domain.IncidentReport
	if err := r.c.Do(ctx, incidentReportCall, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UsageRaw relays the usage report.
func (r *Reports) UsageRaw(ctx context.Context, rng domain.DateRange) (json.RawMessage, error) {
	return r.c.Relay(ctx, usageCall(rng))
}

// StatisticsRaw relays the statistics.
func (r *Reports) StatisticsRaw(ctx context.Context) (json.RawMessage, error) {
	return r.c.Relay(ctx, statisticsCall)
}

// IncidentsRaw relays the incident report.
func (r *Reports) IncidentsRaw(ctx context.Context) (json.RawMessage, error) {
	return r.c.Relay(ctx, incidentReportCall)
}

// AuditRaw relays the audit summary for one day (YYYY-MM-DD).
func (r *Reports) AuditRaw(ctx context.Context, date string) (json.RawMessage, error) {
	return r.c.Relay(ctx, auditReportCall(date))
}

// AuditHistoryRaw relays the filtered audit history.
func (r *Reports) AuditHistoryRaw(ctx context.Context, f domain.AuditFilter) (json.RawMessage, error) {
	return r.c.Relay(ctx, auditHistoryCall(f))
}
