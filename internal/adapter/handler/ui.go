package handler

import (
	"net/http"

	"admin-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UIHandler serves UI specification documents under /ui.
type UIHandler struct {
	uc *usecase.ProvideUISpec
}

// NewUIHandler creates a new UI spec handler.
func NewUIHandler(uc *usecase.ProvideUISpec) *UIHandler {
	return &UIHandler{uc: uc}
}

// HandleView processes GET /ui/:view for top-level views.
func (h *UIHandler) HandleView(c echo.Context) error {
	page, err := h.uc.Execute(c.Request().Context(), c.Param("view"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// HandleUserEdit processes GET /ui/users/:email.
func (h *UIHandler) HandleUserEdit(c echo.Context) error {
	page, err := h.uc.Execute(c.Request().Context(), "users/"+c.Param("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, page)
}
