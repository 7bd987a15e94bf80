package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

// RequireRole returns middleware that checks if the session user has one of
// the specified roles. Admin passes every role check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c.Request().Context())
			if sess == nil {
				return apperr.Unauthorized("Not authenticated")
			}
			if sess.Role == "admin" {
				return next(c)
			}
			for _, required := range roles {
				if sess.Role == required {
					return next(c)
				}
			}
			return apperr.Forbidden("Forbidden: %s access only", strings.Join(roles, " or "))
		}
	}
}
