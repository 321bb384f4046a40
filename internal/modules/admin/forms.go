package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
)

// UserForm creates a user.
type UserForm struct {
	RUT   string `form:"rut" validate:"required"`
	Email string `form:"correo_institucional" validate:"required,email"`
	Name  string `form:"nombre" validate:"required"`
	Role  string `form:"tipo_usuario" validate:"required,oneof=estudiante funcionario administrador"`
}

// UserUpdateForm edits a user; empty fields are left untouched.
type UserUpdateForm struct {
	UserID domain.ID `form:"user_id" validate:"required,gt=0"`
	Name   string    `form:"nombre"`
	Role   string    `form:"tipo_usuario" validate:"omitempty,oneof=estudiante funcionario administrador"`
}

// Request builds the partial update.
func (f UserUpdateForm) Request() domain.UpdateUserRequest {
	return domain.UpdateUserRequest{Name: handlers.OptionalString(f.Name), Role: handlers.OptionalString(f.Role)}
}

// RoleForm changes a user's role.
type RoleForm struct {
	UserID  domain.ID `form:"user_id" validate:"required,gt=0"`
	NewRole string    `form:"new_role" validate:"required,oneof=estudiante funcionario administrador"`
}

// UserIDForm carries a single user id.
type UserIDForm struct {
	UserID domain.ID `form:"user_id" validate:"required,gt=0"`
}

// SpaceForm creates a space.
type SpaceForm struct {
	Name     string `form:"nombre" validate:"required"`
	Type     string `form:"tipo" validate:"required,oneof=sala cancha"`
	Capacity int    `form:"capacidad" validate:"required,gt=0"`
}

// SpaceUpdateForm edits a space; empty fields are left untouched.
type SpaceUpdateForm struct {
	SpaceID  domain.ID `form:"space_id" validate:"required,gt=0"`
	Name     string    `form:"nombre"`
	Type     string    `form:"tipo" validate:"omitempty,oneof=sala cancha"`
	Capacity string    `form:"capacidad"`
}

// Request builds the partial update.
func (f SpaceUpdateForm) Request() (domain.UpdateSpaceRequest, error) {
	capacity, err := optionalInt(f.Capacity)
	if err != nil {
		return domain.UpdateSpaceRequest{}, fmt.Errorf("%w: capacidad: %w", domain.ErrMissingFields, err)
	}
	return domain.UpdateSpaceRequest{Name: handlers.OptionalString(f.Name), Type: handlers.OptionalString(f.Type), Capacity: capacity}, nil
}

// SpaceIDForm carries a single space id.
type SpaceIDForm struct {
	SpaceID domain.ID `form:"space_id" validate:"required,gt=0"`
}

// ApproveForm approves or rejects a pending booking.
type ApproveForm struct {
	BookingID domain.ID `form:"booking_id" validate:"required,gt=0"`
	State     string    `form:"estado" validate:"required,oneof=aprobada rechazada"`
	Reason    string    `form:"motivo"`
}

// BookingIDForm carries a single booking id.
type BookingIDForm struct {
	BookingID domain.ID `form:"booking_id" validate:"required,gt=0"`
}

// ResolveForm closes an incident.
type ResolveForm struct {
	IncidentID domain.ID `form:"incident_id" validate:"required,gt=0"`
	Solution   string    `form:"solucion" validate:"required"`
}

// BlockForm blocks the incident's space for a window.
type BlockForm struct {
	IncidentID domain.ID `form:"incident_id" validate:"required,gt=0"`
	Start      string    `form:"fecha_inicio" validate:"required"`
	End        string    `form:"fecha_fin" validate:"required"`
}

// ConfigForm is the configuration form. Every field is optional; numbers are
// parsed by Update so that an empty input can be told apart from zero.
type ConfigForm struct {
	AdvanceWindowDays  string `form:"ventana_anticipacion_dias"`
	MaxBookingsPerUser string `form:"max_reservas_usuario"`
	MaxDurationHours   string `form:"duracion_max_horas"`
	OpeningTime        string `form:"hora_inicio"`
	ClosingTime        string `form:"hora_fin"`
}

// Update builds the partial update, omitting empty fields.
func (f ConfigForm) Update() (domain.ConfigUpdate, error) {
	var u domain.ConfigUpdate
	var err error
	if u.AdvanceWindowDays, err = optionalInt(f.AdvanceWindowDays); err != nil {
		return u, fmt.Errorf("ventana_anticipacion_dias: %w", err)
	}
	if u.MaxBookingsPerUser, err = optionalInt(f.MaxBookingsPerUser); err != nil {
		return u, fmt.Errorf("max_reservas_usuario: %w", err)
	}
	if u.MaxDurationHours, err = optionalInt(f.MaxDurationHours); err != nil {
		return u, fmt.Errorf("duracion_max_horas: %w", err)
	}
	u.OpeningTime = handlers.OptionalString(f.OpeningTime)
	u.ClosingTime = handlers.OptionalString(f.ClosingTime)
	return u, nil
}

func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative value %d", n)
	}
	return &n, nil
}

// withSeconds completes a datetime-local value ("2006-01-02T15:04") to the
// upstream timestamp format.
func withSeconds(v string) string {
	if i := strings.IndexByte(v, 'T'); i >= 0 && strings.Count(v[i:], ":") == 1 {
		return v + ":00"
	}
	return v
}
