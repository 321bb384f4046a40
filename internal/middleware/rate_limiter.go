package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LoginRateLimit is the number of login attempts allowed per minute and IP.
const LoginRateLimit = 10

// RateLimiter limits requests to LoginRateLimit per minute per client IP.
// It guards the login form against credential stuffing.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(LoginRateLimit) / 60),
			Burst: LoginRateLimit,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "ip", identifier)
			return c.String(http.StatusTooManyRequests, "Demasiados intentos. Intenta nuevamente en un minuto.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
