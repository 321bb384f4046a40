package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

const (
	// SessionCookieName holds the token issued by the auth service.
	SessionCookieName = "token"
	// IdentityContextKey stores the verified *domain.Identity on the echo context.
	IdentityContextKey = "identity"
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"
	// ErrorCodeAccessDenied is the ?error= code for a role mismatch.
	ErrorCodeAccessDenied = "access_denied"
)

// Verifier checks a session token against the auth service.
type Verifier interface {
	Verify(ctx context.Context, token string) (*domain.Verification, error)
}

// Session protects routes with the token cookie. Every request is verified
// upstream; nothing is cached. The token is put on the request context so
// upstream calls made by the handler carry it. allow decides whether the verified identity
// may use the portal; nil allows any valid identity.
func Session(v Verifier, allow func(*domain.Identity) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c)
			if token == "" {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			ctx := c.Request().Context()
			id, err := authenticate(ctx, v, token, allow)
			if err != nil {
				ClearSessionCookie(c)
				if errors.Is(err, domain.ErrAccessDenied) {
					FromContext(ctx).Warn("Access denied", "user_id", id.ID, "role", id.Role)
					return c.Redirect(http.StatusSeeOther, LoginPath+"?error="+ErrorCodeAccessDenied)
				}
				FromContext(ctx).Info("Session rejected", "error", err)
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			c.Set(IdentityContextKey, id)
			c.SetRequest(c.Request().WithContext(gateway.WithToken(ctx, token)))
			return next(c)
		}
	}
}

// authenticate verifies token. On ErrAccessDenied the identity is returned
// too, for logging.
func authenticate(ctx context.Context, v Verifier, token string, allow func(*domain.Identity) bool) (*domain.Identity, error) {
	res, err := v.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if res == nil || !res.Valid || res.UserInfo == nil {
		return nil, domain.ErrInvalidToken
	}
	if allow != nil && !allow(res.UserInfo) {
		return res.UserInfo, domain.ErrAccessDenied
	}
	return res.UserInfo, nil
}

// IdentityFrom returns the identity stored by Session.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(IdentityContextKey).(*domain.Identity)
	return id, ok && id != nil
}

// SessionToken returns the raw token cookie value, or "".
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie stores token in an HTTP-only cookie.
func SetSessionCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the token cookie.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
