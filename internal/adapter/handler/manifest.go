package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ManifestHandler serves the component manifest host apps fetch to
// integrate this component into their navigation.
type ManifestHandler struct{}

// NewManifestHandler creates a new manifest handler.
func NewManifestHandler() *ManifestHandler {
	return &ManifestHandler{}
}

type manifestNavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type manifestRoute struct {
	Path string `json:"path"`
	UI   string `json:"ui"`
}

type manifestResponse struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Nav          []manifestNavItem `json:"nav"`
	Routes       []manifestRoute   `json:"routes"`
	Dependencies map[string][]string `json:"dependencies"`
}

// Handle processes the /manifest endpoint.
func (h *ManifestHandler) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, manifestResponse{
		Name:        "admin-dashboard",
		Version:     "1.0.0",
		Description: "Admin dashboard for user management",
		Nav: []manifestNavItem{
			{Path: "/admin", Label: "Dashboard", Icon: "dashboard"},
			{Path: "/admin/users", Label: "Users", Icon: "users"},
		},
		Routes: []manifestRoute{
			{Path: "/", UI: "/ui/dashboard"},
			{Path: "/users", UI: "/ui/users"},
			{Path: "/users/:email", UI: "/ui/users/:email"},
		},
		Dependencies: map[string][]string{
			"modules": {"auth"},
		},
	})
}
