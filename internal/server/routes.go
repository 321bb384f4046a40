package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"

	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/upstream"
)

// RegisterRoutes mounts the public routes, then boots every module on a
// group protected by the session guard.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	clients, err := do.Invoke[*upstream.Clients](s.Injector)
	if err != nil {
		return err
	}
	layout := do.MustInvoke[*handlers.Layout](s.Injector)

	homeHandler := handlers.NewHomeHandler(layout)
	authHandler := handlers.NewAuthHandler(clients.Auth, layout, s.Cfg.CookieSecure)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", homeHandler.HealthGet)
	s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))

	s.E.GET("/login", authHandler.LoginGet)
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.GET("/logout", authHandler.Logout)

	protected := s.E.Group("", middleware.Session(clients.Auth, s.Cfg.Portal.Allows))
	return s.bootModules(ctx, protected)
}
