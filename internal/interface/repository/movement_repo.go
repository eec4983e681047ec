package repository

import (
	"context"
	"errors"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormMovementRepository implements the MovementRepository interface
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GORM aircraft movement repository
func NewGormMovementRepository(db *gorm.DB) repository.MovementRepository {
	return &GormMovementRepository{
		db: db,
	}
}

// AircraftMovements GORM model for database mapping
type AircraftMovements struct {
	ID               uint    `gorm:"primaryKey"`
	DateOfFlight     string  `gorm:"column:date_of_flight;index"`
	TaskNumber       string  `gorm:"column:task_number"`
	CallSign         string  `gorm:"column:call_sign"`
	AircraftType     string  `gorm:"column:aircraft_type"`
	DeptAerod        string  `gorm:"column:dept_aerod"`
	ATD              *string `gorm:"column:atd"`
	EnrouteEstimates string  `gorm:"column:enroute_estimates"`
	DestAerod        string  `gorm:"column:dest_aerod"`
	Purpose          string  `gorm:"column:purpose"`
	ATA              *string `gorm:"column:ata"`
	OccurrenceStatus string  `gorm:"column:occurrence_status"`
	Remarks          string  `gorm:"column:remarks"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the default table name
func (AircraftMovements) TableName() string {
	return "aircraft_movements"
}

func movementToEntity(model *AircraftMovements) *entity.Movement {
	return &entity.Movement{
		ID:               model.ID,
		DateOfFlight:     model.DateOfFlight,
		TaskNumber:       model.TaskNumber,
		CallSign:         model.CallSign,
		AircraftType:     model.AircraftType,
		DeptAerod:        model.DeptAerod,
		ATD:              model.ATD,
		EnrouteEstimates: model.EnrouteEstimates,
		DestAerod:        model.DestAerod,
		Purpose:          model.Purpose,
		ATA:              model.ATA,
		OccurrenceStatus: model.OccurrenceStatus,
		Remarks:          model.Remarks,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// Create inserts a new movement row
func (r *GormMovementRepository) Create(ctx context.Context, movement *entity.Movement) error {
	model := AircraftMovements{
		DateOfFlight:     movement.DateOfFlight,
		TaskNumber:       movement.TaskNumber,
		CallSign:         movement.CallSign,
		AircraftType:     movement.AircraftType,
		DeptAerod:        movement.DeptAerod,
		ATD:              movement.ATD,
		EnrouteEstimates: movement.EnrouteEstimates,
		DestAerod:        movement.DestAerod,
		Purpose:          movement.Purpose,
		ATA:              movement.ATA,
		OccurrenceStatus: movement.OccurrenceStatus,
		Remarks:          movement.Remarks,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	movement.ID = model.ID
	movement.CreatedAt = model.CreatedAt
	movement.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID finds a movement by id; a missing row yields (nil, nil)
func (r *GormMovementRepository) GetByID(ctx context.Context, id uint) (*entity.Movement, error) {
	var model AircraftMovements
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return movementToEntity(&model), nil
}

// List returns all movements ordered by date of flight descending
func (r *GormMovementRepository) List(ctx context.Context) ([]*entity.Movement, error) {
	var models []AircraftMovements
	result := r.db.WithContext(ctx).Order("date_of_flight DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.Movement, 0, len(models))
	for i := range models {
		entities = append(entities, movementToEntity(&models[i]))
	}
	return entities, nil
}

// ListByDate returns movements flown on the given date
func (r *GormMovementRepository) ListByDate(ctx context.Context, date string) ([]*entity.Movement, error) {
	var models []AircraftMovements
	result := r.db.WithContext(ctx).Where("date_of_flight = ?", date).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.Movement, 0, len(models))
	for i := range models {
		entities = append(entities, movementToEntity(&models[i]))
	}
	return entities, nil
}

// ListByDateRange returns movements within the inclusive range, newest first
func (r *GormMovementRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Movement, error) {
	var models []AircraftMovements
	result := r.db.WithContext(ctx).
		Where("date_of_flight BETWEEN ? AND ?", startDate, endDate).
		Order("date_of_flight DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.Movement, 0, len(models))
	for i := range models {
		entities = append(entities, movementToEntity(&models[i]))
	}
	return entities, nil
}

// Update applies the given column values to one row
func (r *GormMovementRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&AircraftMovements{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// Delete removes one row
func (r *GormMovementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AircraftMovements{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrMovementNotFound
	}
	return nil
}
