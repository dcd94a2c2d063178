package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// AuthHandler handles signup, login and logout. Login issues a server-side
// session and hands the client only the opaque token.
type AuthHandler struct {
	users    ports.UserService
	sessions ports.SessionStore
}

func NewAuthHandler(users ports.UserService, sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Signup creates a new student or lecturer account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Role, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrEmailTaken.Error()})
		}
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRole.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// Login authenticates a user and issues a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Email, req.Role, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
		}
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Me returns the identity behind the caller's session token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Logout revokes the caller's session token.
//
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("session_token").(string)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	if err := h.sessions.Delete(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
