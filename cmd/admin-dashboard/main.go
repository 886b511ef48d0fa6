package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-dashboard/config"
	"admin-dashboard/internal/adapter/gateway"
	adapterhandler "admin-dashboard/internal/adapter/handler"
	"admin-dashboard/internal/usecase"
	appmiddleware "admin-dashboard/middleware"
	"admin-dashboard/utils/logger"
	"admin-dashboard/utils/otel"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// Initialize structured logger
	logger.Init(otelCfg.Enabled)

	// Load configuration; a missing AUTH_URL is fatal before serving traffic
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"auth_url", cfg.AuthURL,
		"port", cfg.Port,
		"api_base_path", cfg.APIBasePath)

	// Outbound gateway to the auth module
	directory := gateway.NewAuthGateway(cfg.AuthURL, cfg.AuthTimeout)

	// Usecases
	provideSpecUC := usecase.NewProvideUISpec(cfg.APIBasePath, slog.Default())
	listUsersUC := usecase.NewListUsers(directory, slog.Default())
	getUserUC := usecase.NewGetUser(directory, slog.Default())
	createUserUC := usecase.NewCreateUser(directory, slog.Default())
	updateUserUC := usecase.NewUpdateUser(directory, slog.Default())
	deleteUserUC := usecase.NewDeleteUser(directory, slog.Default())
	getStatsUC := usecase.NewGetStats(directory, slog.Default())

	// Handlers
	uiHandler := adapterhandler.NewUIHandler(provideSpecUC)
	userHandler := adapterhandler.NewUserHandler(listUsersUC, getUserUC, createUserUC, updateUserUC, deleteUserUC)
	statsHandler := adapterhandler.NewStatsHandler(getStatsUC)
	healthHandler := adapterhandler.NewHealthHandler()
	manifestHandler := adapterhandler.NewManifestHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = adapterhandler.HTTPErrorHandler

	// Security and cross-origin middleware; the frontend SDK is served from
	// arbitrary host apps, so CORS stays permissive like the component it
	// replaces
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Rate limiters per endpoint group
	uiRL := appmiddleware.NewRateLimiter(appmiddleware.RateLimitConfig{Rate: 300.0 / 60.0, Burst: 20})
	apiRL := appmiddleware.NewRateLimiter(appmiddleware.RateLimitConfig{Rate: 120.0 / 60.0, Burst: 10})

	// Component routes
	e.GET("/health", healthHandler.Handle)
	e.GET("/manifest", manifestHandler.Handle)

	// UI spec routes
	ui := e.Group("/ui", uiRL.Middleware())
	ui.GET("/users/:email", uiHandler.HandleUserEdit)
	ui.GET("/:view", uiHandler.HandleView)

	// Data routes proxied to the auth module
	api := e.Group("/api", apiRL.Middleware())
	api.GET("/users", userHandler.HandleList)
	api.POST("/users", userHandler.HandleCreate)
	api.GET("/users/:email", userHandler.HandleGet)
	api.PUT("/users/:email", userHandler.HandleUpdate)
	api.DELETE("/users/:email", userHandler.HandleDelete)
	api.GET("/stats", statsHandler.Handle)

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting admin-dashboard server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8890"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
