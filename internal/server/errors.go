package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/web/src/templates/pages"
)

// MsgInternalError is shown for every error that is not a 404 or 405.
const MsgInternalError = "Error interno del servidor"

// setupErrorHandling installs the error boundary: 404 and 405 keep their
// status, anything else becomes the generic 500 page. Details only go to
// the log.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		status := http.StatusInternalServerError
		message := MsgInternalError

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he) && he.Code == http.StatusNotFound:
			status, message = http.StatusNotFound, "Página no encontrada"
			logger.Info("Not found", "uri", c.Request().RequestURI)
		case errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed:
			status, message = http.StatusMethodNotAllowed, "Método no permitido"
			logger.Info("Method not allowed", "method", c.Request().Method, "uri", c.Request().RequestURI)
		case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
			logger.Warn("Client error turned into 500", "code", he.Code, "error", err)
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"uri", c.Request().RequestURI,
				"stack_trace", string(debug.Stack()),
			)
		}

		page := pages.Error(pages.ErrorData{
			Status:    status,
			Message:   message,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		})
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.Render(status, "", page)
		}
		if err != nil {
			logger.Error("Failed to render error page", "error", err)
		}
	}
}
