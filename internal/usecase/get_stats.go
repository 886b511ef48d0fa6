package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"admin-dashboard/internal/domain"
)

// GetStats fetches aggregate dashboard statistics from the auth module.
type GetStats struct {
	directory domain.UserDirectory
	logger    *slog.Logger
}

// NewGetStats creates a new GetStats usecase.
func NewGetStats(d domain.UserDirectory, l *slog.Logger) *GetStats {
	return &GetStats{directory: d, logger: l}
}

// Execute returns the auth module's stats object verbatim.
func (uc *GetStats) Execute(ctx context.Context) (json.RawMessage, error) {
	stats, err := uc.directory.Stats(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch stats", "error", err)
		return nil, err
	}
	return stats, nil
}
