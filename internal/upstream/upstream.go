// Package upstream holds one typed client per backend service. Each client
// only knows which endpoint and verb an operation maps to; the business
// rules stay in the services themselves.
package upstream

import (
	"context"
	"encoding/json"

	"github.com/nfrund/reservas/internal/gateway"
)

// Caller is the subset of *gateway.Client the clients need.
type Caller interface {
	Do(ctx context.Context, call gateway.Call, out any) error
	Relay(ctx context.Context, call gateway.Call) (json.RawMessage, error)
}

// Clients bundles every upstream client.
type Clients struct {
	Auth          *Auth
	Users         *Users
	Spaces        *Spaces
	Availability  *Availability
	Bookings      *Bookings
	Incidents     *Incidents
	Admin         *Admin
	Notifications *Notifications
	Reports       *Reports
}

// New creates every client over the same caller.
func New(c Caller) *Clients {
	return &Clients{
		Auth:          &Auth{c: c},
		Users:         &Users{c: c},
		Spaces:        &Spaces{c: c},
		Availability:  &Availability{c: c},
		Bookings:      &Bookings{c: c},
		Incidents:     &Incidents{c: c},
		Admin:         &Admin{c: c},
		Notifications: &Notifications{c: c},
		Reports:       &Reports{c: c},
	}
}
