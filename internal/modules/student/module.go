// Package student is the student portal: personal bookings, availability
// search, reservations and incident reports.
package student

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/module"
	"github.com/nfrund/reservas/internal/upstream"
)

// Module implements module.Module for the student portal.
type Module struct {
	module.BaseModule
}

// New creates the student module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "student"
}

// Boot mounts the student routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	clients, err := do.Invoke[*upstream.Clients](i)
	if err != nil {
		return fmt.Errorf("student: %w", err)
	}
	layout, err := do.Invoke[*handlers.Layout](i)
	if err != nil {
		return fmt.Errorf("student: %w", err)
	}

	h := NewHandler(Dependencies{
		Bookings:     clients.Bookings,
		Spaces:       clients.Spaces,
		Incidents:    clients.Incidents,
		Availability: clients.Availability,
		Layout:       layout,
	})
	h.Routes(g)

	slog.Info("Student module booted")
	return nil
}
