package upstream

import (
	"context"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Spaces talks to the spaces service.
type Spaces struct{ c Caller }

// List returns every space, active or not.
func (s *Spaces) List(ctx context.Context) ([]domain.Space, error) {
	var spaces []domain.Space
	if err := s.c.Do(ctx, gateway.Get(gateway.Spaces, "/spaces", nil), &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

// Create registers a new space.
func (s *Spaces) Create(ctx context.Context, req domain.CreateSpaceRequest) (*domain.Space, error) {
	var space domain.Space
	if err := s.c.Do(ctx, gateway.Post(gateway.Spaces, "/spaces/create", req), &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// Update applies a partial update to a space.
func (s *Spaces) Update(ctx context.Context, id domain.ID, req domain.UpdateSpaceRequest) error {
	return s.c.Do(ctx, gateway.Put(gateway.Spaces, "/spaces/"+id.String(), req), nil)
}

// Activate re-enables a deactivated space.
func (s *Spaces) Activate(ctx context.Context, id domain.ID) error {
	active := true
	return s.Update(ctx, id, domain.UpdateSpaceRequest{Active: &active})
}

// Deactivate takes a space out of service.
func (s *Spaces) Deactivate(ctx context.Context, id domain.ID) error {
	return s.c.Do(ctx, gateway.Delete(gateway.Spaces, "/spaces/"+id.String()), nil)
}
