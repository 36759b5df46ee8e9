package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

func newUserService() (*UserService, *memDB) {
	db := newMemDB()
	return NewUserService(userRepo{db}).WithHashCost(bcrypt.MinCost), db
}

func TestUserServiceSignUpStoresHash(t *testing.T) {
	svc, db := newUserService()
	ctx := context.Background()

	id, err := svc.SignUp(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	stored := db.users[id]
	if stored.PasswordHash == "correct horse" || stored.PasswordHash == "" {
		t.Fatalf("password stored unhashed: %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	id, err := svc.SignUp(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	got, err := svc.Authenticate(ctx, "alice", "correct horse")
	if err != nil || got != id {
		t.Fatalf("Authenticate = (%d, %v), want (%d, nil)", got, err, id)
	}

	_, wrongPassword := svc.Authenticate(ctx, "alice", "battery staple")
	_, unknownUser := svc.Authenticate(ctx, "bob", "correct horse")
	if !errors.Is(wrongPassword, entities.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v", wrongPassword)
	}
	if wrongPassword != unknownUser {
		t.Fatalf("failures are distinguishable: %v vs %v", wrongPassword, unknownUser)
	}
}

func TestUserServiceSignUpValidation(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, " ", "long enough"); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
	if _, err := svc.SignUp(ctx, "alice", "short"); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
	if _, err := svc.SignUp(ctx, "alice", strings.Repeat("x", maxPasswordBytes+1)); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for password over %d bytes, got %v", maxPasswordBytes, err)
	}
	if _, err := svc.SignUp(ctx, "bob", strings.Repeat("x", maxPasswordBytes)); err != nil {
		t.Fatalf("SignUp with a %d-byte password failed: %v", maxPasswordBytes, err)
	}

	if _, err := svc.SignUp(ctx, "alice", "long enough"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if _, err := svc.SignUp(ctx, "alice", "another one"); !errors.Is(err, entities.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserServiceGet(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	id, _ := svc.SignUp(ctx, "alice", "long enough")
	u, err := svc.Get(ctx, id)
	if err != nil || u.Username != "alice" {
		t.Fatalf("Get = (%+v, %v)", u, err)
	}
	if _, err := svc.Get(ctx, id+1); !errors.Is(err, entities.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
