package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stroketeam/fasttrack/internal/platform/auth"
)

// Logger logs one line per request: method, path, status, latency, the
// request ID, and the session user when one is present.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if sess := auth.SessionFromContext(c.Request().Context()); sess != nil {
				evt.Str("username", sess.Username).Str("role", sess.Role)
			}

			evt.Msg("request")

			return err
		}
	}
}
