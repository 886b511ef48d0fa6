package handler

import (
	"log/slog"
	"time"

	"admin-dashboard/internal/adapter/gateway"
	"admin-dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// newTestRouter wires the real gateway, usecases and handlers against the
// given auth module URL, mirroring the production route table.
func newTestRouter(authURL string) *echo.Echo {
	directory := gateway.NewAuthGateway(authURL, 2*time.Second)
	logger := slog.Default()

	uiHandler := NewUIHandler(usecase.NewProvideUISpec("/api", logger))
	userHandler := NewUserHandler(
		usecase.NewListUsers(directory, logger),
		usecase.NewGetUser(directory, logger),
		usecase.NewCreateUser(directory, logger),
		usecase.NewUpdateUser(directory, logger),
		usecase.NewDeleteUser(directory, logger),
	)
	statsHandler := NewStatsHandler(usecase.NewGetStats(directory, logger))

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health", NewHealthHandler().Handle)
	e.GET("/manifest", NewManifestHandler().Handle)

	ui := e.Group("/ui")
	ui.GET("/users/:email", uiHandler.HandleUserEdit)
	ui.GET("/:view", uiHandler.HandleView)

	api := e.Group("/api")
	api.GET("/users", userHandler.HandleList)
	api.POST("/users", userHandler.HandleCreate)
	api.GET("/users/:email", userHandler.HandleGet)
	api.PUT("/users/:email", userHandler.HandleUpdate)
	api.DELETE("/users/:email", userHandler.HandleDelete)
	api.GET("/stats", statsHandler.Handle)

	return e
}
