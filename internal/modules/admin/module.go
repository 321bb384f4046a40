// Package admin is the administrator panel: user, space, booking and
// incident management, system configuration, reports and notifications.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/module"
	"github.com/nfrund/reservas/internal/pubsub"
	"github.com/nfrund/reservas/internal/upstream"
)

// Module implements module.Module for the admin panel.
type Module struct {
	module.BaseModule
	cancel context.CancelFunc
}

// New creates the admin module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "admin"
}

// Boot starts the audit subscriber and mounts the admin routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	clients, err := do.Invoke[*upstream.Clients](i)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	layout, err := do.Invoke[*handlers.Layout](i)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := StartAuditLog(subCtx, bus, slog.Default().With("component", "audit")); err != nil {
		cancel()
		return fmt.Errorf("admin: start audit log: %w", err)
	}
	m.cancel = cancel

	h := NewHandler(Dependencies{
		Users:         clients.Users,
		Spaces:        clients.Spaces,
		Bookings:      clients.Bookings,
		Incidents:     clients.Incidents,
		Settings:      clients.Admin,
		Reports:       clients.Reports,
		Notifications: clients.Notifications,
		Availability:  clients.Availability,
		Events:        bus,
		Layout:        layout,
	})
	h.Routes(g)

	slog.Info("Admin module booted")
	return nil
}

// Shutdown stops the audit subscriber.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	slog.Info("Admin module shut down")
	return nil
}
