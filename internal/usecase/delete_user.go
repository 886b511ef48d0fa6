package usecase

import (
	"context"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// DeleteUser deletes a user via the auth module.
type DeleteUser struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewDeleteUser creates a new DeleteUser usecase.
func NewDeleteUser(d domain.UserDirectory, l *slog.Logger) *DeleteUser {
	return &DeleteUser{directory: d, logger: l}
}

// Execute issues exactly one delete; it is never retried, so a transport
// failure leaves the outcome with the auth module.
func (uc *DeleteUser) Execute(ctx context.Context, email string) error {
	if err := uc.directory.DeleteUser(ctx, email); err != nil {
		uc.logger.ErrorContext(ctx, "failed to delete user", "email", email, "error", err)
		return err
	}
	return nil
}
