package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/nfrund/reservas/internal/pubsub"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is done or an interrupt or terminate
// signal arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "portal", s.Cfg.Portal.Name, "addr", s.Cfg.Addr())
		if err := s.E.Start(s.Cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the HTTP server, the modules and the shared services.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server", "portal", s.Cfg.Portal.Name)
	err := s.E.Shutdown(ctx)

	for _, m := range s.modules {
		if mErr := m.Shutdown(ctx); mErr != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", mErr)
		}
	}
	if bus, invokeErr := do.Invoke[*pubsub.WatermillBridge](s.Injector); invokeErr == nil {
		if closeErr := bus.Close(); closeErr != nil {
			slog.Error("Closing event bus failed", "error", closeErr)
		}
	}
	s.Injector.Shutdown()
	return err
}
