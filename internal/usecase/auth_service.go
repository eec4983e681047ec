package usecase

import (
	"context"
	"fmt"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies operator credentials
type AuthService struct {
	users  repository.UserRepository
	logger logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, logger logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		logger: logger,
	}
}

// Login checks a username/password pair and returns the account's access
// level. Accounts that still carry a legacy plaintext password are verified
// against it and upgraded to a bcrypt hash on first successful login.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", entity.ErrMissingFields
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return "", entity.ErrInvalidCredentials
	}

	if user.PasswordHash == "" {
		// Legacy row without a hash yet
		if user.Password != password {
			return "", entity.ErrInvalidCredentials
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.users.UpdatePasswordHash(ctx, username, string(hash)); err != nil {
			// Login still succeeds; the upgrade is retried next time
			s.logger.Error("Failed to upgrade password hash", "username", username, "error", err)
		} else {
			s.logger.Info("Upgraded password hash", "username", username)
		}
		return user.AccessLevel, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entity.ErrInvalidCredentials
	}
	return user.AccessLevel, nil
}
