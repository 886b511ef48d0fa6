package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"admin-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
)

// errorBody is the JSON envelope for every failure. Kind is stable so the
// frontend SDK can render a consistent error state.
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	var upstream *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return echo.NewHTTPError(http.StatusBadRequest, "malformed email identifier")

	case errors.Is(err, domain.ErrInvalidBody):
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be valid JSON")

	case errors.Is(err, domain.ErrViewNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "unknown view identifier")

	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")

	case errors.As(err, &upstream):
		// Client errors reported by the auth module keep their status and
		// detail; the auth module is the source of truth for validation.
		return echo.NewHTTPError(upstream.StatusCode, upstreamDetail(upstream.Body))

	case errors.Is(err, domain.ErrAuthUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "auth module unavailable")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// upstreamDetail extracts a human-readable message from an auth module
// error body, falling back to the raw body.
func upstreamDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "auth module rejected the request"
}

// kindForStatus maps an HTTP status to the stable error kind.
func kindForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "NotFound"
	case status == http.StatusTooManyRequests:
		return "RateLimited"
	case status >= 400 && status < 500:
		return "InvalidArgument"
	case status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return "ServiceUnavailable"
	default:
		return "Internal"
	}
}

// HTTPErrorHandler renders every error, including Echo's own routing
// errors, as an errorBody envelope. Wire it via echo.Echo.HTTPErrorHandler.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = mapDomainError(err)
	}

	message := ""
	switch m := he.Message.(type) {
	case string:
		message = m
	default:
		message = fmt.Sprintf("%v", m)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, errorBody{Kind: kindForStatus(he.Code), Message: message})
}
