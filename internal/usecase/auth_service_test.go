package usecase

import (
	"context"
	"errors"
	"testing"

	"aams-service/internal/domain/entity"
	"aams-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	GetByUsernameFunc      func(ctx context.Context, username string) (*entity.User, error)
	UpdatePasswordHashFunc func(ctx context.Context, username, hash string) error
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	return m.UpdatePasswordHashFunc(ctx, username, hash)
}

func TestLoginWithHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{Username: "ops1", PasswordHash: string(hash), AccessLevel: "admin"}, nil
		},
	}
	service := NewAuthService(repo, logger.NewNop())

	level, err := service.Login(context.Background(), "ops1", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if level != "admin" {
		t.Errorf("access level = %q, want admin", level)
	}

	if _, err := service.Login(context.Background(), "ops1", "wrong"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUpgradesLegacyPlaintext(t *testing.T) {
	var storedHash string
	repo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{Username: "ops1", Password: "secret", AccessLevel: "viewer"}, nil
		},
		UpdatePasswordHashFunc: func(ctx context.Context, username, hash string) error {
			storedHash = hash
			return nil
		},
	}
	service := NewAuthService(repo, logger.NewNop())

	level, err := service.Login(context.Background(), "ops1", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if level != "viewer" {
		t.Errorf("access level = %q, want viewer", level)
	}
	if storedHash == "" {
		t.Fatal("legacy login must persist a bcrypt hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")) != nil {
		t.Error("persisted hash does not verify the original password")
	}
}

func TestLoginSucceedsWhenHashUpgradeFails(t *testing.T) {
	repo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{Username: "ops1", Password: "secret", AccessLevel: "viewer"}, nil
		},
		UpdatePasswordHashFunc: func(ctx context.Context, username, hash string) error {
			return errors.New("connection reset")
		},
	}
	service := NewAuthService(repo, logger.NewNop())

	if _, err := service.Login(context.Background(), "ops1", "secret"); err != nil {
		t.Errorf("Login must succeed despite failed hash upgrade, got %v", err)
	}
}

func TestLoginRejections(t *testing.T) {
	repo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, nil
		},
	}
	service := NewAuthService(repo, logger.NewNop())

	if _, err := service.Login(context.Background(), "", "secret"); !errors.Is(err, entity.ErrMissingFields) {
		t.Errorf("Login(empty username) error = %v, want ErrMissingFields", err)
	}
	if _, err := service.Login(context.Background(), "ghost", "secret"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", err)
	}
}
