package ports

import (
	"context"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// AuthService handles registration and credential verification.
type AuthService interface {
	// Register creates a READER account and returns the user plus a signed
	// session token. Returns domain.ErrEmailTaken on duplicate email.
	Register(ctx context.Context, email, password, name string) (*domain.User, string, error)
	// Login verifies credentials and returns a signed session token.
	// An unknown email and a wrong password are indistinguishable: both
	// yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
