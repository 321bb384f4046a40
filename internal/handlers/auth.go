package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/web/src/templates/pages"
)

// Login page messages.
const (
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgAdminCredentials   = "Credenciales inválidas o no tienes permisos de administrador"
	MsgLoginFailed        = "Error al iniciar sesión"
	MsgMissingCredentials = "Ingresa tu RUT y contraseña"
	MsgAccessDenied       = "Acceso denegado. Se requiere rol de administrador."
)

// Authenticator is the part of the auth service the login flow uses.
type Authenticator interface {
	Login(ctx context.Context, rut, password string) (*domain.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles login and logout for one portal.
type AuthHandler struct {
	auth         Authenticator
	layout       *Layout
	secureCookie bool
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth Authenticator, layout *Layout, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, layout: layout, secureCookie: secureCookie}
}

func (h *AuthHandler) title() string {
	if h.layout.Portal.RequiredRole == domain.RoleAdmin {
		return "Acceso de Administrador"
	}
	return "Iniciar Sesión"
}

func (h *AuthHandler) renderLogin(c echo.Context, data pages.LoginData) error {
	return h.layout.Render(c, h.title(), "", pages.Login(data))
}

// LoginGet renders GET /login, translating the ?error= code from the
// session guard.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	var data pages.LoginData
	if c.QueryParam("error") == middleware.ErrorCodeAccessDenied {
		data.Error = MsgAccessDenied
	}
	return h.renderLogin(c, data)
}

// LoginPost handles POST /login. Failures re-render the form; success sets
// the token cookie and redirects to the dashboard.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form LoginForm
	if err := BindForm(c, &form); err != nil {
		return h.renderLogin(c, pages.LoginData{RUT: form.RUT, Error: MsgMissingCredentials})
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	token, err := h.login(ctx, form)
	if err != nil {
		data := pages.LoginData{RUT: form.RUT}
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			data.Error = MsgAdminCredentials
		case errors.Is(err, domain.ErrInvalidCredentials):
			data.Error = MsgInvalidCredentials
			if h.layout.Portal.RequiredRole != "" {
				data.Error = MsgAdminCredentials
			}
		default:
			data.Error = MsgLoginFailed
		}
		logger.Warn("Failed login attempt", "rut", form.RUT, "error", err)
		return h.renderLogin(c, data)
	}

	middleware.SetSessionCookie(c, token, h.secureCookie)
	logger.Info("User logged in", "rut", form.RUT)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// login returns the session token or one of the domain sentinel errors.
func (h *AuthHandler) login(ctx context.Context, form LoginForm) (string, error) {
	resp, err := h.auth.Login(ctx, form.RUT, form.Password)
	if err != nil {
		switch gateway.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
			return "", errors.Join(domain.ErrInvalidCredentials, err)
		}
		return "", err
	}
	if !resp.OK || resp.Token == "" {
		return "", domain.ErrInvalidCredentials
	}
	if !h.layout.Portal.Allows(resp.UserInfo) {
		// The token was issued for a user this portal rejects; drop it upstream.
		if err := h.auth.Logout(ctx, resp.Token); err != nil {
			middleware.FromContext(ctx).Warn("Failed to revoke rejected token", "error", err)
		}
		return "", domain.ErrAccessDenied
	}
	return resp.Token, nil
}

// Logout handles GET /logout: best-effort upstream logout, then the cookie
// is cleared regardless.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("Upstream logout failed", "error", err)
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
