package ports

import (
	"context"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// UserWithPostCount pairs a user with the number of posts they authored.
type UserWithPostCount struct {
	User      *domain.User
	PostCount int64
}

// UserService defines the admin-only user directory operations.
type UserService interface {
	List(ctx context.Context) ([]UserWithPostCount, error)
	// UpdateRole validates the role string and assigns it. Returns
	// domain.ErrInvalidRole or domain.ErrUserNotFound accordingly.
	UpdateRole(ctx context.Context, userID, role string) (*domain.User, error)
}
