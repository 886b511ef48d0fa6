package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/uispec"
)

// ProvideUISpec resolves a view identifier to a UI specification document.
// It is a pure dispatch over the configured API base path: no outbound
// calls are made, so documents stay available while the auth module is down.
type ProvideUISpec struct {
	apiBase string
	logger  *slog.Logger
}

// NewProvideUISpec creates a new ProvideUISpec usecase.
func NewProvideUISpec(apiBase string, logger *slog.Logger) *ProvideUISpec {
	return &ProvideUISpec{apiBase: apiBase, logger: logger}
}

// Execute builds the document for a view identifier: "dashboard", "users"
// or "users/{email}". An unrecognized identifier yields ErrViewNotFound;
// a malformed email yields ErrInvalidEmail before anything else happens.
func (uc *ProvideUISpec) Execute(ctx context.Context, view string) (*uispec.Page, error) {
	switch view {
	case "dashboard":
		return uispec.Dashboard(uc.apiBase), nil
	case "users":
		return uispec.UsersList(uc.apiBase), nil
	}

	if email, ok := strings.CutPrefix(view, "users/"); ok {
		if !wellFormedEmail(email) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEmail, email)
		}
		return uispec.UserEdit(uc.apiBase, email), nil
	}

	uc.logger.WarnContext(ctx, "unknown view requested", "view", view)
	return nil, fmt.Errorf("%w: %q", domain.ErrViewNotFound, view)
}

// wellFormedEmail checks the minimal shape required to address a user:
// non-empty, with an @ separating non-empty local and domain parts.
// Anything stricter belongs to the auth module.
func wellFormedEmail(email string) bool {
	local, domainPart, found := strings.Cut(email, "@")
	return found && local != "" && domainPart != ""
}
