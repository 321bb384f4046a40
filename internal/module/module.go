// Package module defines the contract between the server and the portal
// features it hosts.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// Module is a self-contained feature: a set of routes plus any background
// work they need.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called at startup, before any module boots, to provide
	// the module's own services to the injector.
	Register(i do.Injector) error

	// Boot mounts the module's routes on router and starts background work.
	// router is already protected by the session guard.
	Boot(ctx context.Context, router *echo.Group, i do.Injector) error

	// Shutdown stops background work.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register and Shutdown.
type BaseModule struct{}

func (m *BaseModule) Register(i do.Injector) error { return nil }

func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
