package admin

import (
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	BookingsTitle = "Gestión de Reservas"
	bookingsPath  = "/reservas"

	MsgBookingProcessFailed = "Error al procesar reserva"
	MsgBookingCancelled     = "Reserva cancelada exitosamente"
	MsgBookingCancelFailed  = "Error al cancelar reserva"
)

// Bookings renders GET /reservas, filtered by ?estado= when it names a
// known state.
func (h *Handler) Bookings(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("estado")
	if !slices.Contains(domain.BookingStates, state) {
		state = ""
	}
	d := adminpages.BookingsData{State: state}

	bookings, err := h.deps.Bookings.List(ctx, state)
	if err != nil {
		middleware.FromContext(ctx).Error("Loading bookings failed", "estado", state, "error", err)
		d.Error = MsgBookingsFailed
	}
	d.Bookings = bookings

	return h.deps.Layout.Render(c, BookingsTitle, bookingsPath, adminpages.Bookings(d))
}

// ApproveBooking handles POST /reservas/aprobar, both approving and
// rejecting depending on estado.
func (h *Handler) ApproveBooking(c echo.Context) error {
	admin, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var form ApproveForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, bookingsPath, MsgBookingProcessFailed)
	}
	err = h.deps.Bookings.Approve(ctx, domain.ApproveBookingRequest{
		BookingID: form.BookingID,
		State:     form.State,
		AdminID:   admin.ID,
		Reason:    handlers.OptionalString(form.Reason),
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Processing booking failed", "booking_id", form.BookingID, "estado", form.State, "error", err)
		return view.RedirectError(c, bookingsPath, handlers.UserMessage(MsgBookingProcessFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: form.State, Target: "reserva", TargetID: form.BookingID, Detail: form.Reason})
	return view.RedirectSuccess(c, bookingsPath, "Reserva "+form.State+" exitosamente")
}

// CancelBooking handles POST /reservas/cancelar.
func (h *Handler) CancelBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var form BookingIDForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, bookingsPath, MsgBookingCancelFailed)
	}
	if err := h.deps.Bookings.Cancel(ctx, form.BookingID); err != nil {
		middleware.FromContext(ctx).Error("Cancelling booking failed", "booking_id", form.BookingID, "error", err)
		return view.RedirectError(c, bookingsPath, handlers.UserMessage(MsgBookingCancelFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "cancelar", Target: "reserva", TargetID: form.BookingID})
	return view.RedirectSuccess(c, bookingsPath, MsgBookingCancelled)
}
