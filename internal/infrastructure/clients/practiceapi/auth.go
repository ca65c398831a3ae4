package practiceapi

import (
	"context"
	"net/http"

	"github.com/cliento/cliento/internal/domain/entities"
)

// LoginRequest is the credentials payload for the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for practitioner registration
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"name"`
	LastName  string `json:"apellido"`
	License   string `json:"matricula"`
}

// Login authenticates against the backend. On success the server sets the
// session and CSRF cookies on the client's jar; the response body carries
// only a message.
func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("/login/"), req, nil)
}

// Register creates a practitioner account. It does not log the user in.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("/register/"), req, nil)
}

// Logout invalidates the server-side session. The cookie jar keeps whatever
// expired cookie the server sends back; subsequent calls fail UNAUTHORIZED.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("/logout/"), nil, nil)
}

// VerifySession reports the authenticated user, or an UNAUTHORIZED error
// when no valid session cookie is held.
func (c *HTTPClient) VerifySession(ctx context.Context) (*entities.User, error) {
	out := &entities.User{}
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/verify-session/"), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
