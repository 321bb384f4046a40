package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/pubsub"
)

// Users is the users service as seen by the admin panel.
type Users interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	Update(ctx context.Context, id domain.ID, req domain.UpdateUserRequest) error
	ChangeRole(ctx context.Context, id domain.ID, role string) error
	Activate(ctx context.Context, id domain.ID) error
	Deactivate(ctx context.Context, id domain.ID) error
}

// Spaces is the spaces service as seen by the admin panel.
type Spaces interface {
	List(ctx context.Context) ([]domain.Space, error)
	Create(ctx context.Context, req domain.CreateSpaceRequest) (*domain.Space, error)
	Update(ctx context.Context, id domain.ID, req domain.UpdateSpaceRequest) error
	Activate(ctx context.Context, id domain.ID) error
	Deactivate(ctx context.Context, id domain.ID) error
}

// Bookings is the bookings service as seen by the admin panel.
type Bookings interface {
	List(ctx context.Context, state string) ([]domain.Booking, error)
	Approve(ctx context.Context, req domain.ApproveBookingRequest) error
	Cancel(ctx context.Context, id domain.ID) error
}

// Incidents is the incidents service as seen by the admin panel.
type Incidents interface {
	List(ctx context.Context) ([]domain.Incident, error)
	Resolve(ctx context.Context, req domain.ResolveIncidentRequest) error
	Block(ctx context.Context, req domain.BlockRequest) error
}

// Settings is the admin service: booking rules and its audit log.
type Settings interface {
	Config(ctx context.Context) (*domain.SystemConfig, error)
	UpdateConfig(ctx context.Context, req domain.ConfigUpdate) error
	AuditLog(ctx context.Context, date string) ([]domain.AuditEntry, error)
}

// Reports is the reports service, decoded for pages and raw for the JSON API.
type Reports interface {
	Usage(ctx context.Context, rng domain.DateRange) (*domain.UsageReport, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
	Incidents(ctx context.Context) (*domain.IncidentReport, error)
	UsageRaw(ctx context.Context, rng domain.DateRange) (json.RawMessage, error)
	StatisticsRaw(ctx context.Context) (json.RawMessage, error)
	IncidentsRaw(ctx context.Context) (json.RawMessage, error)
	AuditRaw(ctx context.Context, date string) (json.RawMessage, error)
	AuditHistoryRaw(ctx context.Context, f domain.AuditFilter) (json.RawMessage, error)
}

// Notifications is the notifications service.
type Notifications interface {
	History(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
	Pending(ctx context.Context) ([]domain.Notification, error)
}

// Dependencies holds the services the admin handlers need. Events may be
// nil, in which case no action events are published.
type Dependencies struct {
	Users         Users
	Spaces        Spaces
	Bookings      Bookings
	Incidents     Incidents
	Settings      Settings
	Reports       Reports
	Notifications Notifications
	Availability  handlers.SpaceSearcher
	Events        pubsub.Publisher
	Layout        *handlers.Layout
	// Now defaults to time.Now; reports use it for the default date range.
	Now func() time.Time
}

// Handler serves the admin panel pages.
type Handler struct {
	deps         Dependencies
	availability *handlers.AvailabilityHandler
}

// NewHandler creates a Handler.
func NewHandler(deps Dependencies) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Handler{
		deps:         deps,
		availability: handlers.NewAvailabilityHandler(deps.Availability, deps.Layout, false),
	}
}

// Routes mounts every admin route on a guarded group.
func (h *Handler) Routes(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard)

	g.GET("/usuarios", h.Users)
	g.POST("/usuarios/crear", h.CreateUser)
	g.POST("/usuarios/actualizar", h.UpdateUser)
	g.POST("/usuarios/cambiar-rol", h.ChangeRole)
	g.POST("/usuarios/activar", h.ActivateUser)
	g.POST("/usuarios/desactivar", h.DeactivateUser)

	g.GET("/espacios", h.Spaces)
	g.POST("/espacios/crear", h.CreateSpace)
	g.POST("/espacios/actualizar", h.UpdateSpace)
	g.POST("/espacios/activar", h.ActivateSpace)
	g.POST("/espacios/desactivar", h.DeactivateSpace)

	g.GET("/reservas", h.Bookings)
	g.POST("/reservas/aprobar", h.ApproveBooking)
	g.POST("/reservas/cancelar", h.CancelBooking)

	g.GET("/incidencias", h.Incidents)
	g.POST("/incidencias/resolver", h.ResolveIncident)
	g.POST("/incidencias/bloquear", h.BlockSpace)

	g.GET("/configuracion", h.Config)
	g.POST("/configuracion/actualizar", h.UpdateConfig)

	g.GET("/reportes", h.Reports)
	g.GET("/notificaciones", h.Notifications)

	g.GET("/disponibilidad", h.availability.Get)
	g.POST("/disponibilidad", h.availability.Post)

	api := g.Group("/api/reports")
	api.GET("/uso", h.UsageJSON)
	api.GET("/estadisticas", h.StatisticsJSON)
	api.GET("/incidencias", h.IncidentsJSON)
	api.GET("/auditoria", h.AuditHistoryJSON)
	api.GET("/audit", h.AuditJSON)
}

func identity(c echo.Context) (*domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return id, nil
}

// published records a successful mutation on the action bus. A failure to
// publish is logged and otherwise ignored.
func (h *Handler) published(c echo.Context, ev domain.ActionEvent) {
	if h.deps.Events == nil {
		return
	}
	ctx := c.Request().Context()
	if admin, ok := middleware.IdentityFrom(c); ok {
		ev.AdminID = admin.ID
	}
	if err := pubsub.Publish(ctx, h.deps.Events, ActionEvents, ev.AdminID.String(), ev); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish admin action", "action", ev.Action, "target", ev.Target, "error", err)
	}
}

// today formats the current date the way the upstream services expect.
func (h *Handler) today() string {
	return h.deps.Now().Format(DateLayout)
}

// DateLayout is the date format of report ranges and filters.
const DateLayout = "2006-01-02"

// defaultRange fills missing ends of a report range with the last 30 days.
func (h *Handler) defaultRange(from, to string) domain.DateRange {
	now := h.deps.Now()
	if from == "" {
		from = now.AddDate(0, 0, -30).Format(DateLayout)
	}
	if to == "" {
		to = now.Format(DateLayout)
	}
	return domain.DateRange{From: from, To: to}
}
