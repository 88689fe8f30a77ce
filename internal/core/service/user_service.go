package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rolebase/blog-api/internal/core/domain"
	"github.com/rolebase/blog-api/internal/core/ports"
)

// UserService implements the admin-only directory operations.
type UserService struct {
	users  ports.UserRepository
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, logger: logger}
}

// List returns all users, newest first, each with their post count.
func (s *UserService) List(ctx context.Context) ([]ports.UserWithPostCount, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	out := make([]ports.UserWithPostCount, 0, len(users))
	for _, u := range users {
		count, err := s.posts.CountByAuthor(ctx, u.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", u.ID).Msg("failed to count posts")
		}
		out = append(out, ports.UserWithPostCount{User: u, PostCount: count})
	}
	return out, nil
}

// UpdateRole assigns a new role to the user. The target is looked up first
// so an unknown id is reported as not found rather than a blind write.
func (s *UserService) UpdateRole(ctx context.Context, userID, role string) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateRole(ctx, userID, parsed)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("role", string(parsed)).Msg("user role updated")
	return updated, nil
}
