package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// GetUser fetches a single user from the auth module.
type GetUser struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewGetUser creates a new GetUser usecase.
func NewGetUser(d domain.UserDirectory, l *slog.Logger) *GetUser {
	return &GetUser{directory: d, logger: l}
}

// Execute returns the auth module's user object verbatim. The email is
// passed through as-is; an unknown one surfaces as ErrUserNotFound from
// the directory.
func (uc *GetUser) Execute(ctx context.Context, email string) (json.RawMessage, error) {
	user, err := uc.directory.GetUser(ctx, email)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to get user", "email", email, "error", err)
		return nil, err
	}
	return user, nil
}
