package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// ListUsers fetches all users from the auth module.
type ListUsers struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewListUsers creates a new ListUsers usecase.
func NewListUsers(d domain.UserDirectory, l *slog.Logger) *ListUsers {
	return &ListUsers{directory: d, logger: l}
}

// Execute returns the auth module's user list verbatim.
func (uc *ListUsers) Execute(ctx context.Context) (json.RawMessage, error) {
	users, err := uc.directory.ListUsers(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
