package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// UpdateUser updates a user via the auth module.
type UpdateUser struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewUpdateUser creates a new UpdateUser usecase.
func NewUpdateUser(d domain.UserDirectory, l *slog.Logger) *UpdateUser {
	return &UpdateUser{directory: d, logger: l}
}

// Execute forwards the request body unchanged after checking it is
// well-formed JSON. A malformed body is rejected locally so the auth
// module never sees the call.
func (uc *UpdateUser) Execute(ctx context.Context, email string, body json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", domain.ErrInvalidBody)
	}

	updated, err := uc.directory.UpdateUser(ctx, email, body)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to update user", "email", email, "error", err)
		return nil, err
	}
	return updated, nil
}
