package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

func newUserService(userRepo *stubUserRepo, roleRepo *stubRoleRepo) *UserService {
	return NewUserService(userRepo, roleRepo, zerolog.Nop())
}

func TestUserService_Create_HashesPasswordAndAttachesDefaultRole(t *testing.T) {
	userRepo := newStubUserRepo()
	roleRepo := newStubRoleRepo()
	_, _ = roleRepo.Create(context.Background(), &domain.Role{Name: domain.RoleDefault})
	svc := newUserService(userRepo, roleRepo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username:  "alice",
		Password:  "pass123",
		Firstname: "Alice",
		Lastname:  "Smith",
		Dob:       time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.HasRole(domain.RoleDefault) {
		t.Fatalf("expected default role attached, got %v", user.Roles)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestUserService_Create_NoDefaultRoleWhenAbsent(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(user.Roles) != 0 {
		t.Fatalf("expected no roles, got %v", user.Roles)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pw"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pw2"}); !errors.Is(err, domain.ErrUserExisted) {
		t.Fatalf("expected ErrUserExisted, got %v", err)
	}
}

func TestUserService_Update_PartialMergeKeepsOmittedFields(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	dob := time.Date(1985, 7, 12, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username:  "carol",
		Password:  "pw",
		Firstname: "Carol",
		Lastname:  "Jones",
		Dob:       dob,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	firstname := "Caroline"
	updated, err := svc.Update(context.Background(), "carol", ports.UpdateUserInput{Firstname: &firstname})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Firstname != "Caroline" {
		t.Fatalf("firstname not applied: %s", updated.Firstname)
	}
	if updated.Lastname != "Jones" {
		t.Fatalf("lastname clobbered by partial update: %s", updated.Lastname)
	}
	if !updated.Dob.Equal(dob) {
		t.Fatalf("dob clobbered by partial update: %v", updated.Dob)
	}
}

func TestUserService_Update_BumpsVersion(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "dora", Password: "pw"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	lastname := "Lopez"
	updated, err := svc.Update(context.Background(), "dora", ports.UpdateUserInput{Lastname: &lastname})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Version != created.Version+1 {
		t.Fatalf("expected version %d, got %d", created.Version+1, updated.Version)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	firstname := "X"
	if _, err := svc.Update(context.Background(), "ghost", ports.UpdateUserInput{Firstname: &firstname}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "eve", Password: "pw"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "eve"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "eve"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "eve"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
