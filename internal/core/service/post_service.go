package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rolebase/blog-api/internal/core/domain"
	"github.com/rolebase/blog-api/internal/core/ports"
)

// PostService implements post use cases. Visibility narrowing happens here,
// inside the repository query, so hidden records never leave the store.
type PostService struct {
	repo   ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, users: users, logger: logger}
}

// List returns the posts visible to the viewer, newest first.
func (s *PostService) List(ctx context.Context, viewer domain.Role) ([]ports.PostDetail, error) {
	filter := ports.ListPostsFilter{PublishedOnly: !domain.CanViewUnpublished(viewer)}

	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list posts")
		return nil, err
	}

	out := make([]ports.PostDetail, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.toDetail(ctx, p))
	}
	return out, nil
}

// Get fetches a single post. A post that exists but is hidden from the
// viewer is reported exactly like an absent one so unpublished content
// cannot be probed by id.
func (s *PostService) Get(ctx context.Context, id string, viewer domain.Role) (*ports.PostDetail, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.Published && !domain.CanViewUnpublished(viewer) {
		return nil, domain.ErrPostNotFound
	}

	detail := s.toDetail(ctx, post)
	return &detail, nil
}

// Create inserts a new post owned by the caller.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*ports.PostDetail, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		AuthorID:  in.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", in.AuthorID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Bool("published", created.Published).Msg("post created")

	detail := s.toDetail(ctx, created)
	return &detail, nil
}

// Update applies a partial update. Existence is checked first so an absent
// id surfaces as ErrPostNotFound rather than a storage error.
func (s *PostService) Update(ctx context.Context, id string, in ports.UpdatePostInput) (*ports.PostDetail, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Msg("post updated")

	detail := s.toDetail(ctx, updated)
	return &detail, nil
}

// Delete removes a post after verifying it exists.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// toDetail resolves the author summary. A dangling author reference is not
// an error: the post is returned without the embedded author.
func (s *PostService) toDetail(ctx context.Context, p *domain.Post) ports.PostDetail {
	detail := ports.PostDetail{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	author, err := s.users.FindByID(ctx, p.AuthorID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("post_id", p.ID).Str("author_id", p.AuthorID).Msg("failed to resolve author")
		}
		return detail
	}

	detail.Author = &ports.AuthorSummary{ID: author.ID, Name: author.Name, Email: author.Email}
	return detail
}
