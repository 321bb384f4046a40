package admin

import (
	"context"
	"log/slog"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/pubsub"
)

// ActionEvents carries every successful administrator mutation.
var ActionEvents = pubsub.NewEvent[domain.ActionEvent]("admin.actions")

// StartAuditLog subscribes to ActionEvents and writes one structured log
// line per action until ctx is done.
func StartAuditLog(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return pubsub.Subscribe(ctx, sub, ActionEvents, func(_ context.Context, ev domain.ActionEvent, _ pubsub.Message) error {
		attrs := []any{
			"action", ev.Action,
			"target", ev.Target,
			"admin_id", ev.AdminID,
		}
		if ev.TargetID != 0 {
			attrs = append(attrs, "target_id", ev.TargetID)
		}
		if ev.Detail != "" {
			attrs = append(attrs, "detail", ev.Detail)
		}
		logger.Info("Admin action", attrs...)
		return nil
	})
}
