package admin

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/fanout"
	"github.com/nfrund/reservas/internal/middleware"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	DashboardTitle = "Panel de Administración"

	recentBookings  = 10
	recentIncidents = 5
)

// Read failures, one per upstream list.
const (
	MsgUsersFailed     = "Error cargando usuarios"
	MsgSpacesFailed    = "Error cargando espacios"
	MsgBookingsFailed  = "Error cargando reservas"
	MsgIncidentsFailed = "Error cargando incidencias"
)

// Dashboard renders GET /dashboard from four concurrent fetches. Each
// failed fetch adds its own message; the rest of the page still renders.
func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		users     []domain.User
		spaces    []domain.Space
		bookings  []domain.Booking
		incidents []domain.Incident
	)
	report := fanout.Run(ctx,
		fanout.Task{Name: "users", Fn: func(ctx context.Context) (err error) {
			users, err = h.deps.Users.List(ctx)
			return err
		}},
		fanout.Task{Name: "spaces", Fn: func(ctx context.Context) (err error) {
			spaces, err = h.deps.Spaces.List(ctx)
			return err
		}},
		fanout.Task{Name: "bookings", Fn: func(ctx context.Context) (err error) {
			bookings, err = h.deps.Bookings.List(ctx, "")
			return err
		}},
		fanout.Task{Name: "incidents", Fn: func(ctx context.Context) (err error) {
			incidents, err = h.deps.Incidents.List(ctx)
			return err
		}},
	)

	d := adminpages.DashboardData{
		Stats:           dashboardStats(users, spaces, bookings, incidents),
		RecentBookings:  head(bookings, recentBookings),
		RecentIncidents: head(incidents, recentIncidents),
	}
	if !report.OK() {
		middleware.FromContext(ctx).Error("Loading admin dashboard failed", "failed", report.Failed(), "error", report.Err())
		d.Errors = failureMessages(report.Failed(), map[string]string{
			"users":     MsgUsersFailed,
			"spaces":    MsgSpacesFailed,
			"bookings":  MsgBookingsFailed,
			"incidents": MsgIncidentsFailed,
		})
	}

	return h.deps.Layout.Render(c, DashboardTitle, "/dashboard", adminpages.Dashboard(d))
}

func dashboardStats(users []domain.User, spaces []domain.Space, bookings []domain.Booking, incidents []domain.Incident) adminpages.DashboardStats {
	s := adminpages.DashboardStats{
		Users:     len(users),
		Spaces:    len(spaces),
		Bookings:  len(bookings),
		Incidents: len(incidents),
	}
	for _, u := range users {
		if u.Active {
			s.ActiveUsers++
		}
	}
	for _, sp := range spaces {
		if sp.Active {
			s.ActiveSpaces++
		}
	}
	for _, b := range bookings {
		if b.State == domain.BookingPending {
			s.PendingBookings++
		}
	}
	for _, i := range incidents {
		if i.Open() {
			s.OpenIncidents++
		}
	}
	return s
}

// head returns at most n leading elements.
func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// failureMessages maps failed task names to their messages, in task order.
func failureMessages(failed []string, messages map[string]string) []string {
	out := make([]string, 0, len(failed))
	for _, name := range failed {
		out = append(out, messages[name])
	}
	return out
}
