package upstream

import (
	"context"
	"net/url"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Bookings talks to the bookings service.
type Bookings struct{ c Caller }

// List returns every booking, optionally filtered by state.
func (b *Bookings) List(ctx context.Context, state string) ([]domain.Booking, error) {
	var q url.Values
	if state != "" {
		q = url.Values{"estado": {state}}
	}
	var out []domain.Booking
	if err := b.c.Do(ctx, gateway.Get(gateway.Bookings, "/bookings", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns one user's bookings.
func (b *Bookings) ListByUser(ctx context.Context, userID domain.ID) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := b.c.Do(ctx, gateway.Get(gateway.Bookings, "/bookings/user/"+userID.String(), nil), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create requests a booking.
func (b *Bookings) Create(ctx context.Context, req domain.CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := b.c.Do(ctx, gateway.Post(gateway.Bookings, "/bookings/create", req), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve approves or rejects a booking.
func (b *Bookings) Approve(ctx context.Context, req domain.ApproveBookingRequest) error {
	return b.c.Do(ctx, gateway.Post(gateway.Bookings, "/bookings/approve", req), nil)
}

// Cancel cancels a booking.
func (b *Bookings) Cancel(ctx context.Context, id domain.ID) error {
	return b.c.Do(ctx, gateway.Delete(gateway.Bookings, "/bookings/"+id.String()), nil)
}
