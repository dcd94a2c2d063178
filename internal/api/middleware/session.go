package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// Session resolves the bearer token against the server-side session table and
// injects the identity snapshot into context.
func Session(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := sessions.Get(c.Request().Context(), parts[1])
			if err != nil {
				if err == domain.ErrSessionNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, "session not found or expired")
				}
				return err
			}

			c.Set("session_token", sess.Token)
			c.Set("user", sess.User)
			c.Set("user_id", sess.User.ID)
			c.Set("role", sess.User.Role)

			return next(c)
		}
	}
}
