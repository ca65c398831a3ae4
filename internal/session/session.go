package session

import (
	"context"
	"fmt"

	"github.com/cliento/cliento/internal/domain/entities"
	"github.com/cliento/cliento/internal/infrastructure/clients/practiceapi"
	apperrors "github.com/cliento/cliento/pkg/errors"
)

// API is the slice of the practice API the session manager consumes
type API interface {
	Login(ctx context.Context, req practiceapi.LoginRequest) error
	Logout(ctx context.Context) error
	VerifySession(ctx context.Context) (*entities.User, error)
}

// Manager holds the process-wide session state. It is initialized once at
// application start from the session-verification endpoint and torn down on
// logout; nothing else in the codebase asks the backend who is logged in.
type Manager struct {
	api  API
	user *entities.User
}

// NewManager creates an uninitialized manager
func NewManager(api API) *Manager {
	return &Manager{api: api}
}

// Init verifies the held session cookie against the backend. An
// unauthenticated session is a normal outcome, not an error.
func (m *Manager) Init(ctx context.Context) error {
	user, err := m.api.VerifySession(ctx)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeUnauthorized) {
			m.user = nil
			return nil
		}
		return fmt.Errorf("failed to verify session: %w", err)
	}
	m.user = user
	return nil
}

// Login authenticates and populates the session state
func (m *Manager) Login(ctx context.Context, email, password string) error {
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "is required"
	}
	if password == "" {
		fields["password"] = "is required"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("credentials missing", fields)
	}

	if err := m.api.Login(ctx, practiceapi.LoginRequest{Email: email, Password: password}); err != nil {
		return err
	}

	user, err := m.api.VerifySession(ctx)
	if err != nil {
		return fmt.Errorf("login succeeded but session verification failed: %w", err)
	}
	m.user = user
	return nil
}

// Logout invalidates the server session and clears the local state. Local
// state is cleared even when the server call fails; the cookie is gone
// either way as far as this process is concerned.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.api.Logout(ctx)
	m.user = nil
	return err
}

// User returns the authenticated user, or nil
func (m *Manager) User() *entities.User {
	return m.user
}

// Authenticated reports whether a verified session is held
func (m *Manager) Authenticated() bool {
	return m.user != nil
}
