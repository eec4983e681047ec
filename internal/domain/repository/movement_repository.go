package repository

import (
	"context"

	"aams-service/internal/domain/entity"
)

// MovementRepository defines the interface for aircraft movement storage
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id uint) (*entity.Movement, error)
	List(ctx context.Context) ([]*entity.Movement, error)
	ListByDate(ctx context.Context, date string) ([]*entity.Movement, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Movement, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
