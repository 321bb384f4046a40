package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/reservas/internal/logging"
)

// Logger injects a request-scoped logger carrying the request ID and portal
// into the request context. It must run after the RequestID middleware.
func Logger(portal string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			requestLogger := slog.Default().With("request_id", reqID, "portal", portal)

			ctx := logging.WithLogger(c.Request().Context(), requestLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
