package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// LoginResult is returned on successful authentication. Token is a signed
// session token the client sends back on subsequent requests; the server
// validates it on every call, the client never decides expiry on its own.
type LoginResult struct {
	Token    string
	Username string
	Role     string
}

// AuthService implements credential checks and session lifecycle.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout revokes the session identified by sid. Revoking an unknown
	// session is not an error.
	Logout(ctx context.Context, sid string) error
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
}
