package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

// ctxUser extracts the identity snapshot injected by the Session middleware
// and performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(domain.User)
	if !ok || user.Role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return &user, nil
}
