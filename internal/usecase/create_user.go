package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// CreateUser creates a user via the auth module.
type CreateUser struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewCreateUser creates a new CreateUser usecase.
func NewCreateUser(d domain.UserDirectory, l *slog.Logger) *CreateUser {
	return &CreateUser{directory: d, logger: l}
}

// Execute forwards the request body unchanged. Only structural validity of
// the body is checked here; field-level validation is the auth module's job.
func (uc *CreateUser) Execute(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", domain.ErrInvalidBody)
	}

	created, err := uc.directory.CreateUser(ctx, body)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to create user", "error", err)
		return nil, err
	}
	return created, nil
}
