package repository

import (
	"context"
	"errors"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormUserRepository implements the UserRepository interface
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Users GORM model for database mapping
type Users struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"column:username;unique"`
	Password     string `gorm:"column:password"`
	PasswordHash string `gorm:"column:password_hash"`
	AccessLevel  string `gorm:"column:access_level"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "users"
}

// GetByUsername finds a user by username; a missing row yields (nil, nil)
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var model Users
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &entity.User{
		ID:           model.ID,
		Username:     model.Username,
		Password:     model.Password,
		PasswordHash: model.PasswordHash,
		AccessLevel:  model.AccessLevel,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

// UpdatePasswordHash stores a bcrypt hash for the user and clears any legacy
// plaintext password
func (r *GormUserRepository) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&Users{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{"password_hash": hash, "password": ""})
	return result.Error
}
