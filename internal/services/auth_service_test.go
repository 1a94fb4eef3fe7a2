package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-backend/internal/auth"
	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	tokenManager, err := auth.NewTokenManager("test-secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return NewAuthService(newFakeUserRepo(), tokenManager, testLogger())
}

func TestRegisterIssuesTokens(t *testing.T) {
	service := newTestAuthService(t)

	result, err := service.Register(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if result.User.Email != "alice@example.com" {
		t.Errorf("email = %q", result.User.Email)
	}
	if result.User.ID.IsZero() {
		t.Error("user id not assigned")
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Error("token pair not issued")
	}
	if result.User.PasswordHash == "secret123" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := service.Register(ctx, "alice@example.com", "another-pass")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRoundtrip(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := service.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != registered.User.ID {
		t.Error("login returned a different user")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Login(ctx, "alice@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := service.Refresh(ctx, registered.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if result.User.ID != registered.User.ID {
		t.Error("refresh returned a different user")
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Error("refresh did not issue a full pair")
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Refresh(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
