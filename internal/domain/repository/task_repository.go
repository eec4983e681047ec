package repository

import (
	"context"

	"aams-service/internal/domain/entity"
)

// TaskRepository defines the interface for aircraft task storage operations
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uint) (*entity.Task, error)
	List(ctx context.Context) ([]*entity.Task, error)
	ListByDate(ctx context.Context, date string) ([]*entity.Task, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Task, error)
	ListByGroupID(ctx context.Context, groupID string) ([]*entity.Task, error)

	// ConfirmedNumbersWithSuffix returns the task numbers of confirmed tasks
	// whose number ends with the given "/MON/YY" suffix.
	ConfirmedNumbersWithSuffix(ctx context.Context, suffix string) ([]string, error)

	Update(ctx context.Context, id uint, fields map[string]interface{}) error

	// UpdateGroup applies fields to every row in a group except excludeID.
	UpdateGroup(ctx context.Context, groupID string, excludeID uint, fields map[string]interface{}) error

	Delete(ctx context.Context, id uint) error
}
