package domain

import (
	"context"
	"encoding/json"
)

// UserDirectory is the outbound port to the auth module, the system of
// record for user accounts. Implementations make exactly one upstream call
// per operation and never retry, so mutations are delivered at most once.
// Successful payloads are returned verbatim.
type UserDirectory interface {
	ListUsers(ctx context.Context) (json.RawMessage, error)
	GetUser(ctx context.Context, email string) (json.RawMessage, error)
	CreateUser(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	UpdateUser(ctx context.Context, email string, body json.RawMessage) (json.RawMessage, error)
	DeleteUser(ctx context.Context, email string) error
	Stats(ctx context.Context) (json.RawMessage, error)
}
