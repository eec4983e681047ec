package repository

import (
	"context"

	"aams-service/internal/domain/entity"
)

// UserRepository defines the interface for user account storage
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, username, hash string) error
}
