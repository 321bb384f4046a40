package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnavailable wraps transport failures: the upstream could not be reached
// or its response could not be read.
var ErrUnavailable = errors.New("upstream unavailable")

// ErrInvalidJSON is returned when a relayed body is not valid JSON.
var ErrInvalidJSON = errors.New("upstream returned invalid JSON")

// UpstreamError is a non-2xx answer from an upstream service.
type UpstreamError struct {
	Service Service
	Method  string
	Path    string
	Status  int
	// Detail is the human-readable reason found in the response body, if any.
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s %s: status %d: %s", e.Service, e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.Status)
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status
	}
	return 0
}

// DetailOf returns the upstream-provided reason carried by err, or "".
func DetailOf(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Detail
	}
	return ""
}

// detailPaths are tried in order. FastAPI reports "detail" as a string or,
// for validation failures, as a list of objects with a "msg" field.
var detailPaths = []string{"detail", "detail.0.msg", "error", "message"}

const maxPlainDetail = 200

// extractDetail finds a human-readable reason in an error body.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if !gjson.ValidBytes(body) {
		text := strings.TrimSpace(string(body))
		if len(text) > maxPlainDetail {
			return ""
		}
		return text
	}
	for _, path := range detailPaths {
		if r := gjson.GetBytes(body, path); r.Exists() && r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return ""
}
