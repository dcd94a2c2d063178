package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// UserHandler exposes admin-initiated account management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /v1/users.
//
// @Summary      List all non-admin users, newest first
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// Create handles POST /v1/users — admin-initiated registration.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
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
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// Update handles PUT /v1/users/:id — partial update of name/email/role/password.
//
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Error()})
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrEmailTaken.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Delete handles DELETE /v1/users/:id. Deletion is permanent and immediate.
//
// @Summary      Delete a user account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	removed, err := h.users.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
