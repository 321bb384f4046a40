package upstream

import (
	"context"
	"net/url"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Auth talks to the auth service.
type Auth struct{ c Caller }

// Login exchanges credentials for a session token.
func (a *Auth) Login(ctx context.Context, rut, password string) (*domain.LoginResponse, error) {
	var resp domain.LoginResponse
	err := a.c.Do(ctx, gateway.Post(gateway.Auth, "/auth/login", domain.LoginRequest{RUT: rut, Password: password}), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify checks a session token and returns the identity behind it.
func (a *Auth) Verify(ctx context.Context, token string) (*domain.Verification, error) {
	var v domain.Verification
	if err := a.c.Do(ctx, gateway.Get(gateway.Auth, "/auth/verify/"+url.PathEscape(token), nil), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Logout invalidates a session token upstream.
func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.c.Do(ctx, gateway.Post(gateway.Auth, "/auth/logout", map[string]string{"token": token}), nil)
}
