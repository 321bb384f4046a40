package student

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/fanout"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	"github.com/nfrund/reservas/web/src/templates/pages"
	studentpages "github.com/nfrund/reservas/web/src/templates/pages/student"
)

// Messages shown to students.
const (
	DashboardTitle         = "Mi Panel de Reservas"
	MsgDashboardFailed     = "Error cargando datos"
	MsgReserveMissing      = "Faltan datos para reservar (espacio/fechas)."
	MsgReserveFailed       = "No se pudo crear la reserva"
	MsgReserveOK           = "Reserva solicitada exitosamente"
	MsgCancelOK            = "Reserva cancelada exitosamente"
	MsgCancelFailed        = "Error al cancelar reserva"
	MsgIncidentOK          = "Incidencia reportada exitosamente"
	MsgIncidentFailed      = "Error al reportar incidencia"
	MsgIncidentFieldsEmpty = "Completa espacio, tipo y descripción de la incidencia"
)

// Bookings is the part of the bookings service students use.
type Bookings interface {
	ListByUser(ctx context.Context, userID domain.ID) ([]domain.Booking, error)
	Create(ctx context.Context, req domain.CreateBookingRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, id domain.ID) error
}

// Spaces lists spaces.
type Spaces interface {
	List(ctx context.Context) ([]domain.Space, error)
}

// Incidents files incident reports.
type Incidents interface {
	Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error)
}

// Dependencies holds the services the student handlers need.
type Dependencies struct {
	Bookings     Bookings
	Spaces       Spaces
	Incidents    Incidents
	Availability handlers.SpaceSearcher
	Layout       *handlers.Layout
}

// Handler serves the student portal pages.
type Handler struct {
	deps         Dependencies
	availability *handlers.AvailabilityHandler
}

// NewHandler creates a Handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		deps:         deps,
		availability: handlers.NewAvailabilityHandler(deps.Availability, deps.Layout, true),
	}
}

// Routes mounts the handlers on a guarded group.
func (h *Handler) Routes(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard)
	g.GET("/disponibilidad", h.availability.Get)
	g.POST("/disponibilidad", h.availability.Post)
	g.POST("/reservar", h.Reserve)
	g.POST("/cancelar-reserva", h.CancelBooking)
	g.POST("/incidencias/reportar", h.ReportIncident)
}

// ReserveForm is posted from a free space on the availability page.
type ReserveForm struct {
	SpaceID domain.ID `form:"id_espacio" validate:"required,gt=0"`
	Start   string    `form:"fecha_inicio" validate:"required"`
	End     string    `form:"fecha_fin" validate:"required"`
	Reason  string    `form:"motivo"`
}

// CancelForm cancels one of the student's bookings.
type CancelForm struct {
	BookingID domain.ID `form:"booking_id" validate:"required,gt=0"`
}

// IncidentForm reports a problem with a space.
type IncidentForm struct {
	SpaceID     domain.ID `form:"id_espacio" validate:"required,gt=0"`
	Type        string    `form:"tipo_incidencia" validate:"required"`
	Description string    `form:"descripcion" validate:"required"`
}

// identity returns the session identity; the guard guarantees it exists on
// every route of this module.
func identity(c echo.Context) (*domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return id, nil
}

// Dashboard renders GET /dashboard. Bookings and spaces are fetched
// concurrently; whatever succeeded is shown.
func (h *Handler) Dashboard(c echo.Context) error {
	user, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	d := studentpages.DashboardData{User: user}
	report := fanout.Run(ctx,
		fanout.Task{Name: "bookings", Fn: func(ctx context.Context) (err error) {
			d.Bookings, err = h.deps.Bookings.ListByUser(ctx, user.ID)
			return err
		}},
		fanout.Task{Name: "spaces", Fn: func(ctx context.Context) (err error) {
			d.Spaces, err = h.deps.Spaces.List(ctx)
			return err
		}},
	)
	if !report.OK() {
		middleware.FromContext(ctx).Error("Loading student dashboard failed", "user_id", user.ID, "failed", report.Failed(), "error", report.Err())
		d.Error = MsgDashboardFailed
	}

	return h.deps.Layout.Render(c, DashboardTitle, "/dashboard", studentpages.Dashboard(d))
}

// Reserve handles POST /reservar.
func (h *Handler) Reserve(c echo.Context) error {
	user, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form ReserveForm
	if err := handlers.BindForm(c, &form); err != nil {
		logger.Warn("Incomplete reservation", "user_id", user.ID, "error", err)
		return h.availability.Render(c, pages.AvailabilityData{Error: MsgReserveMissing})
	}

	_, err = h.deps.Bookings.Create(ctx, domain.CreateBookingRequest{
		UserID:  user.ID,
		SpaceID: form.SpaceID,
		Start:   form.Start,
		End:     form.End,
		Reason:  handlers.OptionalString(form.Reason),
	})
	if err != nil {
		logger.Error("Creating booking failed", "user_id", user.ID, "space_id", form.SpaceID, "error", err)
		return h.availability.Render(c, pages.AvailabilityData{Error: handlers.UserMessage(MsgReserveFailed, err)})
	}

	logger.Info("Booking requested", "user_id", user.ID, "space_id", form.SpaceID)
	return view.RedirectSuccess(c, "/dashboard", MsgReserveOK)
}

// CancelBooking handles POST /cancelar-reserva.
func (h *Handler) CancelBooking(c echo.Context) error {
	user, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var form CancelForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, "/dashboard", MsgCancelFailed)
	}
	if err := h.deps.Bookings.Cancel(ctx, form.BookingID); err != nil {
		middleware.FromContext(ctx).Error("Cancelling booking failed", "user_id", user.ID, "booking_id", form.BookingID, "error", err)
		return view.RedirectError(c, "/dashboard", handlers.UserMessage(MsgCancelFailed, err))
	}
	return view.RedirectSuccess(c, "/dashboard", MsgCancelOK)
}

// ReportIncident handles POST /incidencias/reportar.
func (h *Handler) ReportIncident(c echo.Context) error {
	user, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var form IncidentForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, "/dashboard", MsgIncidentFieldsEmpty)
	}
	_, err = h.deps.Incidents.Report(ctx, domain.ReportIncidentRequest{
		SpaceID:     form.SpaceID,
		Type:        form.Type,
		Description: form.Description,
		ReporterID:  user.ID,
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Reporting incident failed", "user_id", user.ID, "space_id", form.SpaceID, "error", err)
		return view.RedirectError(c, "/dashboard", handlers.UserMessage(MsgIncidentFailed, err))
	}
	return view.RedirectSuccess(c, "/dashboard", MsgIncidentOK)
}
