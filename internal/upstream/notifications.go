package upstream

import (
	"context"
	"net/url"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Notifications talks to the notifications service.
type Notifications struct{ c Caller }

// History returns sent and unsent notifications matching f.
func (n *Notifications) History(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	q := url.Values{}
	setIf(q, "tipo", f.Type)
	setIf(q, "fecha_inicio", f.From)
	setIf(q, "fecha_fin", f.To)

	var out []domain.Notification
	if err := n.c.Do(ctx, gateway.Get(gateway.Notifications, "/notifications/history", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pending returns notifications not yet delivered.
func (n *Notifications) Pending(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := n.c.Do(ctx, gateway.Get(gateway.Notifications, "/notifications/pending", nil), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
