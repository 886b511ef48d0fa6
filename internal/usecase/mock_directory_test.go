package usecase

import (
	"context"
	"encoding/json"
)

// mockDirectory implements domain.UserDirectory for testing, recording
// every call it receives.
type mockDirectory struct {
	payload json.RawMessage
	err     error

	calls       int
	lastEmail   string
	lastBody    json.RawMessage
	lastMethods []string
}

func (m *mockDirectory) record(method string) {
	m.calls++
	m.lastMethods = append(m.lastMethods, method)
}

func (m *mockDirectory) ListUsers(_ context.Context) (json.RawMessage, error) {
	m.record("ListUsers")
	return m.payload, m.err
}

func (m *mockDirectory) GetUser(_ context.Context, email string) (json.RawMessage, error) {
	m.record("GetUser")
	m.lastEmail = email
	return m.payload, m.err
}

func (m *mockDirectory) CreateUser(_ context.Context, body json.RawMessage) (json.RawMessage, error) {
	m.record("CreateUser")
	m.lastBody = body
	return m.payload, m.err
}

func (m *mockDirectory) UpdateUser(_ context.Context, email string, body json.RawMessage) (json.RawMessage, error) {
	m.record("UpdateUser")
	m.lastEmail = email
	m.lastBody = body
	return m.payload, m.err
}

func (m *mockDirectory) DeleteUser(_ context.Context, email string) error {
	m.record("DeleteUser")
	m.lastEmail = email
	return m.err
}

func (m *mockDirectory) Stats(_ context.Context) (json.RawMessage, error) {
	m.record("Stats")
	return m.payload, m.err
}
