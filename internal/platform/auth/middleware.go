package auth

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware parses the session cookie when present and attaches the
// session to the request context. Requests without a valid cookie pass
// through unauthenticated; RequireAuth decides whether that matters.
func SessionMiddleware(mgr *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := mgr.Parse(cookie.Value)
			if err != nil {
				// Expired or tampered cookie: treat as unauthenticated.
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), sessionKey, sess)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no authenticated session.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFromContext(c.Request().Context()) == nil {
				return apperr.Unauthorized("Not authenticated")
			}
			return next(c)
		}
	}
}

// DevSessionMiddleware grants an admin session to unauthenticated requests.
// Development mode only.
func DevSessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFromContext(c.Request().Context()) != nil {
				return next(c)
			}
			sess := &Session{
				UserID:   "dev-user",
				Username: "dev",
				Name:     "Dev User",
				Role:     "admin",
			}
			ctx := context.WithValue(c.Request().Context(), sessionKey, sess)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey).(*Session)
	return sess
}

// WithSession returns a context carrying sess. Test helper.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}
