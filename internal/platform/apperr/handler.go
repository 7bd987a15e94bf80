package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var kindStatus = map[Kind]int{
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindValidation:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindStore:        http.StatusInternalServerError,
}

// HTTPErrorHandler returns an echo error handler that maps taxonomy errors to
// status codes and emits {"message": ...} payloads. Store errors are logged
// with their cause and surfaced as a generic 500; echo's own HTTPErrors pass
// through unchanged.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Server Error"

		var he *echo.HTTPError
		var ae *Error
		switch {
		case errors.As(err, &he):
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		case errors.As(err, &ae):
			status = kindStatus[ae.Kind]
			message = ae.Message
			if ae.Kind == KindStore {
				logger.Error().Err(ae.Err).Str("path", c.Request().URL.Path).Msg("store error")
				message = "Server Error"
			}
		default:
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]string{"message": message})
	}
}
