package domain

import "errors"

// Sentinel errors for the front-end layer. These provide consistent, checkable
// errors for failures that are decided here rather than upstream.
var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrInvalidToken       = errors.New("session token is invalid or expired")
	ErrAccessDenied       = errors.New("role not allowed on this portal")
	ErrMissingFields      = errors.New("required form fields are missing")
)
