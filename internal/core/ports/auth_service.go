package ports

import (
	"context"
	"time"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// AuthResult carries the outcome of a successful sign-up or login.
type AuthResult struct {
	Token     string
	SessionID string
	User      *domain.User
}

// AuthService defines account and session use-cases.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (*AuthResult, error)
	LogIn(ctx context.Context, username, password string) (*AuthResult, error)
	// LogOut revokes the session. Revoking an unknown or already revoked
	// session is not an error.
	LogOut(ctx context.Context, sessionID string) error
}

// SessionStore is the server-side session registry. A token is only
// accepted by the auth middleware while its session id is still present,
// which makes logout an actual revocation rather than a client-side discard.
type SessionStore interface {
	Create(ctx context.Context, sessionID, username string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
