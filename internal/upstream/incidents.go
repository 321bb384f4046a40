package upstream

import (
	"context"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Incidents talks to the incidents service.
type Incidents struct{ c Caller }

// List returns every incident.
func (i *Incidents) List(ctx context.Context) ([]domain.Incident, error) {
	var out []domain.Incident
	if err := i.c.Do(ctx, gateway.Get(gateway.Incidents, "/incidents", nil), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Report files a new incident.
func (i *Incidents) Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error) {
	var out domain.Incident
	if err := i.c.Do(ctx, gateway.Post(gateway.Incidents, "/incidents/report", req), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Block reserves the incident's space for maintenance.
func (i *Incidents) Block(ctx context.Context, req domain.BlockRequest) error {
	return i.c.Do(ctx, gateway.Post(gateway.Incidents, "/incidents/block", req), nil)
}

// Resolve closes an incident.
func (i *Incidents) Resolve(ctx context.Context, req domain.ResolveIncidentRequest) error {
	return i.c.Do(ctx, gateway.Post(gateway.Incidents, "/incidents/resolve", req), nil)
}
