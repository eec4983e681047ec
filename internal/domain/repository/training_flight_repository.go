package repository

import (
	"context"

	"aams-service/internal/domain/entity"
)

// TrainingFlightRepository defines the interface for training flight storage
type TrainingFlightRepository interface {
	Create(ctx context.Context, flight *entity.TrainingFlight) error
	GetByID(ctx context.Context, id uint) (*entity.TrainingFlight, error)
	List(ctx context.Context) ([]*entity.TrainingFlight, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.TrainingFlight, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
