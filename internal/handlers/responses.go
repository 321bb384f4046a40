package handlers

import (
	"errors"

	"github.com/nfrund/reservas/internal/gateway"
)

// ErrorResponse is the body of JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserMessage builds the message shown for a failed upstream call: the
// handler's generic text, followed by the upstream detail when there is one.
func UserMessage(generic string, err error) string {
	var ue *gateway.UpstreamError
	if errors.As(err, &ue) && ue.Detail != "" {
		return generic + ": " + ue.Detail
	}
	return generic
}
