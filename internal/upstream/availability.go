package upstream

import (
	"context"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Availability talks to the availability service.
type Availability struct{ c Caller }

// Check asks whether one space is free in a window.
func (a *Availability) Check(ctx context.Context, req domain.AvailabilityCheck) (*domain.Availability, error) {
	var out domain.Availability
	if err := a.c.Do(ctx, gateway.Post(gateway.Availability, "/availability/check", req), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Spaces lists spaces of a type with their availability in a window.
func (a *Availability) Spaces(ctx context.Context, req domain.SpaceSearch) ([]domain.AvailableSpace, error) {
	var out []domain.AvailableSpace
	if err := a.c.Do(ctx, gateway.Post(gateway.Availability, "/availability/spaces", req), &out); err != nil {
		return nil, err
	}
	return out, nil
}
