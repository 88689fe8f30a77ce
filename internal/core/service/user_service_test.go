package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rolebase/blog-api/internal/core/domain"
)

func TestUserService_List_WithPostCounts(t *testing.T) {
	userRepo := newStubUserRepo()
	postRepo := newStubPostRepo()
	svc := NewUserService(userRepo, postRepo, zerolog.Nop())

	writer, _ := userRepo.Create(context.Background(), &domain.User{Email: "w@example.com", Name: "W", Role: domain.RoleWriter})
	reader, _ := userRepo.Create(context.Background(), &domain.User{Email: "r@example.com", Name: "R", Role: domain.RoleReader})

	_, _ = postRepo.Create(context.Background(), &domain.Post{Title: "a", AuthorID: writer.ID})
	_, _ = postRepo.Create(context.Background(), &domain.Post{Title: "b", AuthorID: writer.ID, Published: true})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 users, got %d", len(items))
	}

	counts := make(map[string]int64, len(items))
	for _, item := range items {
		counts[item.User.ID] = item.PostCount
	}
	if counts[writer.ID] != 2 {
		t.Fatalf("expected writer post count 2, got %d", counts[writer.ID])
	}
	if counts[reader.ID] != 0 {
		t.Fatalf("expected reader post count 0, got %d", counts[reader.ID])
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := NewUserService(userRepo, newStubPostRepo(), zerolog.Nop())

	user, _ := userRepo.Create(context.Background(), &domain.User{Email: "a@example.com", Name: "A", Role: domain.RoleReader})

	updated, err := svc.UpdateRole(context.Background(), user.ID, "WRITER")
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != domain.RoleWriter {
		t.Fatalf("expected WRITER, got %s", updated.Role)
	}
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := NewUserService(userRepo, newStubPostRepo(), zerolog.Nop())

	user, _ := userRepo.Create(context.Background(), &domain.User{Email: "a@example.com", Name: "A", Role: domain.RoleReader})

	if _, err := svc.UpdateRole(context.Background(), user.ID, "writer"); err != domain.ErrInvalidRole {
		t.Fatalf("roles are case-sensitive, expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.UpdateRole(context.Background(), user.ID, "SUPERUSER"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubPostRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), "user_missing", "ADMIN"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
