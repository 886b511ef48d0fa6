package handler

import (
	"net/http"

	"admin-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves GET /api/stats.
type StatsHandler struct {
	uc *usecase.GetStats
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(uc *usecase.GetStats) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Handle proxies the auth module's aggregate statistics unchanged.
func (h *StatsHandler) Handle(c echo.Context) error {
	stats, err := h.uc.Execute(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, stats)
}
