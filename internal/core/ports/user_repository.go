package ports

import (
	"context"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already registered (unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAll returns every user, newest first.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the user's role. Returns domain.ErrUserNotFound when
	// the id does not resolve to an existing user.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
