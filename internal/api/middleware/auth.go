package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-service/internal/core/ports"
)

// Context keys under which the auth middleware exposes the caller's identity.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth resolves the session cookie against the session store and injects the
// caller's username and role into the request context. Requests without a
// valid session are rejected with 401 before any handler runs.
func Auth(sessions ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session cookie")
			}

			session, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, ports.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				return err
			}

			c.Set(ContextUsername, session.Username)
			c.Set(ContextRole, session.Role)

			return next(c)
		}
	}
}
