package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"

	"github.com/nfrund/reservas/internal/config"
	"github.com/nfrund/reservas/internal/gateway"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/module"
	"github.com/nfrund/reservas/internal/pubsub"
	"github.com/nfrund/reservas/internal/rendering"
	"github.com/nfrund/reservas/internal/upstream"
)

// Server holds the dependencies for one portal's HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Injector *do.RootScope
	Registry *prometheus.Registry
	modules  []module.Module
}

// New creates a Server for cfg.Portal hosting mods. Routes are not mounted
// until RegisterRoutes is called.
func New(cfg *config.Config, mods ...module.Module) (*Server, error) {
	if cfg.UsesDevSecret() {
		slog.Warn("SESSION_SECRET is not set, using the development secret")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	injector := do.New()
	provideServices(injector, cfg, registry)
	for _, m := range mods {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger(cfg.Portal.Name))
	e.Use(requestLogger())
	e.Use(echomw.Recover())

	// The flash store only carries one-shot messages; the session itself is
	// the token cookie verified by the auth service.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Injector: injector,
		Registry: registry,
		modules:  mods,
	}, nil
}

// provideServices registers the shared services every module can invoke.
func provideServices(i do.Injector, cfg *config.Config, registry *prometheus.Registry) {
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, handlers.NewLayout(cfg.Portal))
	do.Provide(i, func(do.Injector) (*gateway.Metrics, error) {
		return gateway.NewMetrics(registry), nil
	})
	do.Provide(i, func(i do.Injector) (*gateway.Client, error) {
		metrics, err := do.Invoke[*gateway.Metrics](i)
		if err != nil {
			return nil, err
		}
		return gateway.New(cfg.Services, gateway.WithTimeout(cfg.UpstreamTimeout), gateway.WithMetrics(metrics)), nil
	})
	do.Provide(i, func(i do.Injector) (*upstream.Clients, error) {
		gw, err := do.Invoke[*gateway.Client](i)
		if err != nil {
			return nil, err
		}
		return upstream.New(gw), nil
	})
	do.Provide(i, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
}

// requestLogger logs one line per request with the request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger := middleware.FromContext(c.Request().Context())
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Warn("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("Request", attrs...)
			return nil
		},
	})
}

// bootModules boots every module on the guarded group.
func (s *Server) bootModules(ctx context.Context, g *echo.Group) error {
	for _, m := range s.modules {
		if err := m.Boot(ctx, g, s.Injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}
