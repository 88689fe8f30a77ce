package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// demoPassword is shared by every seeded account. Demo seeding is opt-in via
// SEED_DEMO_DATA and intended for local development only.
const demoPassword = "password123"

// SeedDemoData creates one user per role plus a handful of sample posts.
// Seeding is idempotent: when the admin account already exists nothing is
// written.
func SeedDemoData(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	if _, err := users.FindByEmail(ctx, "admin@example.com"); err == nil {
		log.Debug().Msg("demo data already seeded")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	seedUsers := []*domain.User{
		{Email: "admin@example.com", Name: "Admin User", Role: domain.RoleAdmin},
		{Email: "writer@example.com", Name: "Writer User", Role: domain.RoleWriter},
		{Email: "reader@example.com", Name: "Reader User", Role: domain.RoleReader},
	}

	byRole := make(map[domain.Role]*domain.User, len(seedUsers))
	for _, u := range seedUsers {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		u.UpdatedAt = now
		created, err := users.Create(ctx, u)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				created, err = users.FindByEmail(ctx, u.Email)
				if err != nil {
					return err
				}
			} else {
				return err
			}
		}
		byRole[created.Role] = created
	}

	seedPosts := []*domain.Post{
		{Title: "Getting Started", Content: "A quick tour of the blog API and its role model.", Published: true, AuthorID: byRole[domain.RoleWriter].ID},
		{Title: "Role-Based Access Control", Content: "How READER, WRITER, and ADMIN differ, and why writers cannot edit published posts.", Published: true, AuthorID: byRole[domain.RoleAdmin].ID},
		{Title: "Building RESTful APIs", Content: "Resource naming, status codes, and error envelopes.", Published: true, AuthorID: byRole[domain.RoleWriter].ID},
		{Title: "Draft: Upcoming Features", Content: "Unpublished draft, only visible to admins.", Published: false, AuthorID: byRole[domain.RoleWriter].ID},
		{Title: "Structured Logging", Content: "Why every request deserves a request id.", Published: true, AuthorID: byRole[domain.RoleAdmin].ID},
	}
	for _, p := range seedPosts {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := posts.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Info().Int("users", len(seedUsers)).Int("posts", len(seedPosts)).Msg("demo data seeded")
	return nil
}
