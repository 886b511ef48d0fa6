package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"admin-dashboard/internal/domain"
)

// AuthGateway implements domain.UserDirectory against the auth module's
// REST API. One inbound operation maps to exactly one upstream call; there
// are no retries, so update and delete are delivered at most once.
type AuthGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthGateway creates a gateway with a tuned HTTP transport. The client
// is safe for concurrent reuse across requests.
func NewAuthGateway(baseURL string, timeout time.Duration) *AuthGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &AuthGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// ListUsers fetches all users.
func (g *AuthGateway) ListUsers(ctx context.Context) (json.RawMessage, error) {
	return g.roundTrip(ctx, http.MethodGet, "/users", nil)
}

// GetUser fetches a single user by email.
func (g *AuthGateway) GetUser(ctx context.Context, email string) (json.RawMessage, error) {
	return g.roundTrip(ctx, http.MethodGet, "/users/"+url.PathEscape(email), nil)
}

// CreateUser creates a user, passing the request body through unchanged.
func (g *AuthGateway) CreateUser(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return g.roundTrip(ctx, http.MethodPost, "/users", body)
}

// UpdateUser updates a user, passing the request body through unchanged.
func (g *AuthGateway) UpdateUser(ctx context.Context, email string, body json.RawMessage) (json.RawMessage, error) {
	return g.roundTrip(ctx, http.MethodPut, "/users/"+url.PathEscape(email), body)
}

// DeleteUser deletes a user by email.
func (g *AuthGateway) DeleteUser(ctx context.Context, email string) error {
	_, err := g.roundTrip(ctx, http.MethodDelete, "/users/"+url.PathEscape(email), nil)
	return err
}

// Stats fetches the aggregate dashboard statistics.
func (g *AuthGateway) Stats(ctx context.Context) (json.RawMessage, error) {
	return g.roundTrip(ctx, http.MethodGet, "/stats", nil)
}

// roundTrip performs one upstream call and translates the outcome:
// 2xx returns the body verbatim, 404 becomes ErrUserNotFound, any other
// 4xx is preserved as an UpstreamError, and 5xx or transport failures
// become ErrAuthUnavailable.
func (g *AuthGateway) roundTrip(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return payload, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: payload}
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAuthUnavailable, resp.StatusCode)
	}
}
