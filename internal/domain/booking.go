package domain

// Booking states.
const (
	BookingPending   = "pendiente"
	BookingApproved  = "aprobada"
	BookingRejected  = "rechazada"
	BookingCancelled = "cancelada"
	BookingBlocked   = "bloqueo"
)

// BookingStates lists the states a booking list can be filtered by.
var BookingStates = []string{BookingPending, BookingApproved, BookingRejected, BookingCancelled, BookingBlocked}

// Booking is a reservation as returned by the bookings service.
type Booking struct {
	ID          ID      `json:"id"`
	UserID      ID      `json:"id_usuario"`
	SpaceID     ID      `json:"id_espacio"`
	Start       string  `json:"fecha_inicio"`
	End         string  `json:"fecha_fin"`
	State       string  `json:"estado"`
	Reason      *string `json:"motivo"`
	RequestedAt string  `json:"fecha_solicitud"`
	Recurring   bool    `json:"recurrente"`
	SpaceName   string  `json:"espacio_nombre"`
	UserName    string  `json:"usuario_nombre"`
}

// CreateBookingRequest requests a reservation.
type CreateBookingRequest struct {
	UserID  ID      `json:"id_usuario"`
	SpaceID ID      `json:"id_espacio"`
	Start   string  `json:"fecha_inicio"`
	End     string  `json:"fecha_fin"`
	Reason  *string `json:"motivo"`
}

// ApproveBookingRequest approves or rejects a pending reservation.
type ApproveBookingRequest struct {
	BookingID ID      `json:"id_reserva"`
	State     string  `json:"estado"`
	AdminID   ID      `json:"id_administrador"`
	Reason    *string `json:"motivo"`
}
