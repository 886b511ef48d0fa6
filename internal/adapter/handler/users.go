package handler

import (
	"io"
	"net/http"

	"admin-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the user data endpoints under /api/users, proxying
// each request to the auth module.
type UserHandler struct {
	list   *usecase.ListUsers
	get    *usecase.GetUser
	create *usecase.CreateUser
	update *usecase.UpdateUser
	delete *usecase.DeleteUser
}

// NewUserHandler creates a new user data handler.
func NewUserHandler(
	list *usecase.ListUsers,
	get *usecase.GetUser,
	create *usecase.CreateUser,
	update *usecase.UpdateUser,
	del *usecase.DeleteUser,
) *UserHandler {
	return &UserHandler{list: list, get: get, create: create, update: update, delete: del}
}

// HandleList processes GET /api/users.
func (h *UserHandler) HandleList(c echo.Context) error {
	users, err := h.list.Execute(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, users)
}

// HandleGet processes GET /api/users/:email.
func (h *UserHandler) HandleGet(c echo.Context) error {
	user, err := h.get.Execute(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, user)
}

// HandleCreate processes POST /api/users.
func (h *UserHandler) HandleCreate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	created, err := h.create.Execute(c.Request().Context(), body)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusCreated, created)
}

// HandleUpdate processes PUT /api/users/:email.
func (h *UserHandler) HandleUpdate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	updated, err := h.update.Execute(c.Request().Context(), c.Param("email"), body)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, updated)
}

// HandleDelete processes DELETE /api/users/:email.
func (h *UserHandler) HandleDelete(c echo.Context) error {
	if err := h.delete.Execute(c.Request().Context(), c.Param("email")); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
