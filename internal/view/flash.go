package view

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/logging"
)

const (
	// FlashSessionName is the gorilla/sessions cookie holding flash messages.
	FlashSessionName = "reservas-flash"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// Status values carried in the ?status= query parameter after a redirect.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FlashData holds the one-shot messages for the next render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// AddError appends an error message, used for errors produced during the
// current request rather than a previous one.
func (f *FlashData) AddError(msg string) {
	if msg != "" {
		f.Error = append(f.Error, msg)
	}
}

func setFlash(c echo.Context, key, message string) {
	logger := logging.FromContext(c.Request().Context())
	sess, err := session.Get(FlashSessionName, c)
	if err != nil {
		// A tampered or stale cookie still yields a usable new session.
		logger.Warn("Flash session unreadable", "error", err)
	}
	if sess == nil {
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error("Saving flash session failed", "error", err)
	}
}

// SetFlashSuccess queues a success message for the next page.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next page.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData reads and clears the queued messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(FlashSessionName, c)
	if sess == nil {
		return data
	}

	data.Success = toStrings(sess.Flashes(flashKeySuccess))
	data.Error = toStrings(sess.Flashes(flashKeyError))

	// Flashes() only removes them from the in-memory session.
	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(flashes []interface{}) []string {
	var out []string
	for _, f := range flashes {
		if s, ok := f.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RedirectSuccess queues message and redirects to path?status=success.
func RedirectSuccess(c echo.Context, path, message string) error {
	SetFlashSuccess(c, message)
	return c.Redirect(http.StatusSeeOther, WithStatus(path, StatusSuccess))
}

// RedirectError queues message and redirects to path?status=error.
func RedirectError(c echo.Context, path, message string) error {
	SetFlashError(c, message)
	return c.Redirect(http.StatusSeeOther, WithStatus(path, StatusError))
}

// WithStatus appends the status indicator to path, keeping any query it has.
func WithStatus(path, status string) string {
	u, err := url.Parse(path)
	if err != nil {
		return fmt.Sprintf("%s?status=%s", path, url.QueryEscape(status))
	}
	q := u.Query()
	q.Set("status", status)
	u.RawQuery = q.Encode()
	return u.String()
}
