package ports

import (
	"context"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// ListPostsFilter carries the query parameters for listing posts.
// PublishedOnly is always decided by the service layer from the viewer's
// role, so hidden records are filtered inside the query rather than after it.
type ListPostsFilter struct {
	PublishedOnly bool
	AuthorID      string // optional: scope to a single author
}

// UpdatePostInput is a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Published *bool
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts matching filter, newest first.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	// Update applies a partial update. Returns domain.ErrPostNotFound when
	// the id does not resolve to an existing post.
	Update(ctx context.Context, id string, in UpdatePostInput) (*domain.Post, error)
	// Delete removes the post. Returns domain.ErrPostNotFound when absent.
	Delete(ctx context.Context, id string) error
	// CountByAuthor returns the number of posts owned by the given user.
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}
