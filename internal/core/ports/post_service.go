package ports

import (
	"context"
	"time"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
// AuthorID is always the authenticated caller's id, never client-supplied.
type CreatePostInput struct {
	Title     string
	Content   string
	Published bool
	AuthorID  string
}

// AuthorSummary is the embedded author view on post responses.
type AuthorSummary struct {
	ID    string
	Name  string
	Email string
}

// PostDetail is the full post view returned by the service.
type PostDetail struct {
	ID        string
	Title     string
	Content   string
	Published bool
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	// Author is resolved from the user directory; nil when the author
	// record can no longer be found.
	Author *AuthorSummary
}

// PostService defines use-case operations for posts. Read operations take
// the viewer's role and narrow visibility server-side; write operations are
// role-gated at the transport layer before they reach the service.
type PostService interface {
	List(ctx context.Context, viewer domain.Role) ([]PostDetail, error)
	// Get returns domain.ErrPostNotFound both when the post is absent and
	// when it exists but is not visible to the viewer.
	Get(ctx context.Context, id string, viewer domain.Role) (*PostDetail, error)
	Create(ctx context.Context, in CreatePostInput) (*PostDetail, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*PostDetail, error)
	Delete(ctx context.Context, id string) error
}
