package upstream

import (
	"context"
	"net/url"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Admin talks to the admin-config service.
type Admin struct{ c Caller }

// Config returns the current booking rules.
func (a *Admin) Config(ctx context.Context) (*domain.SystemConfig, error) {
	var out domain.SystemConfig
	if err := a.c.Do(ctx, gateway.Get(gateway.Admin, "/admin/config", nil), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig applies a partial configuration update.
func (a *Admin) UpdateConfig(ctx context.Context, req domain.ConfigUpdate) error {
	return a.c.Do(ctx, gateway.Put(gateway.Admin, "/admin/config", req), nil)
}

// AuditLog returns the latest audit entries, since date (YYYY-MM-DD) when set.
func (a *Admin) AuditLog(ctx context.Context, date string) ([]domain.AuditEntry, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"fecha": {date}}
	}
	var out []domain.AuditEntry
	if err := a.c.Do(ctx, gateway.Get(gateway.Admin, "/admin/audit", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}
