package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/reservas/internal/domain"
)

// CustomValidator wraps go-playground/validator as an echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// BindForm binds the request into dst and validates it. Any binding or
// validation failure is reported as domain.ErrMissingFields.
func BindForm(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMissingFields, err)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(dst); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMissingFields, err)
	}
	return nil
}

// MissingFields reports whether err came from BindForm.
func MissingFields(err error) bool {
	return errors.Is(err, domain.ErrMissingFields)
}

// LoginForm is the login form of both portals.
type LoginForm struct {
	RUT      string `form:"rut" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AvailabilityForm is the availability search form.
type AvailabilityForm struct {
	Date      string `form:"fecha" validate:"required"`
	Time      string `form:"hora" validate:"required"`
	Duration  int    `form:"duracion" validate:"required,min=1,max=24"`
	SpaceType string `form:"tipo_espacio" validate:"omitempty,oneof=sala cancha"`
}

// DateTimeLayout is the naive local timestamp format the upstream services use.
const DateTimeLayout = "2006-01-02T15:04:05"

// Window returns the search window: fecha+"T"+hora+":00" plus Duration hours.
func (f AvailabilityForm) Window() (start, end string, err error) {
	clock := f.Time
	if strings.Count(clock, ":") == 1 {
		clock += ":00"
	}
	t, err := time.Parse(DateTimeLayout, f.Date+"T"+clock)
	if err != nil {
		return "", "", fmt.Errorf("%w: fecha u hora inválida: %w", domain.ErrMissingFields, err)
	}
	return t.Format(DateTimeLayout), t.Add(time.Duration(f.Duration) * time.Hour).Format(DateTimeLayout), nil
}

// SpaceTypeFilter is the optional type filter, nil for every type.
func (f AvailabilityForm) SpaceTypeFilter() *string {
	if f.SpaceType == "" {
		return nil
	}
	t := f.SpaceType
	return &t
}

// OptionalString maps an empty form value to nil.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
