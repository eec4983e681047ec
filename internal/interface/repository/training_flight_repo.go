package repository

import (
	"context"
	"errors"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTrainingFlightRepository implements the TrainingFlightRepository interface
type GormTrainingFlightRepository struct {
	db *gorm.DB
}

// NewGormTrainingFlightRepository creates a new GORM training flight repository
func NewGormTrainingFlightRepository(db *gorm.DB) repository.TrainingFlightRepository {
	return &GormTrainingFlightRepository{
		db: db,
	}
}

// TrainingFlights GORM model for database mapping
type TrainingFlights struct {
	ID           uint    `gorm:"primaryKey"`
	DateOfFlight string  `gorm:"column:date_of_flight;index"`
	CallSign     string  `gorm:"column:call_sign"`
	AircraftType string  `gorm:"column:aircraft_type"`
	ATD          *string `gorm:"column:atd"`
	Route        string  `gorm:"column:route"`
	ATA          *string `gorm:"column:ata"`
	Duty         string  `gorm:"column:duty"`
	Crew         string  `gorm:"column:crew"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (TrainingFlights) TableName() string {
	return "training_flights"
}

func flightToEntity(model *TrainingFlights) *entity.TrainingFlight {
	return &entity.TrainingFlight{
		ID:           model.ID,
		DateOfFlight: model.DateOfFlight,
		CallSign:     model.CallSign,
		AircraftType: model.AircraftType,
		ATD:          model.ATD,
		Route:        model.Route,
		ATA:          model.ATA,
		Duty:         model.Duty,
		Crew:         model.Crew,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// Create inserts a new training flight row
func (r *GormTrainingFlightRepository) Create(ctx context.Context, flight *entity.TrainingFlight) error {
	model := TrainingFlights{
		DateOfFlight: flight.DateOfFlight,
		CallSign:     flight.CallSign,
		AircraftType: flight.AircraftType,
		ATD:          flight.ATD,
		Route:        flight.Route,
		ATA:          flight.ATA,
		Duty:         flight.Duty,
		Crew:         flight.Crew,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	flight.ID = model.ID
	flight.CreatedAt = model.CreatedAt
	flight.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID finds a flight by id; a missing row yields (nil, nil)
func (r *GormTrainingFlightRepository) GetByID(ctx context.Context, id uint) (*entity.TrainingFlight, error) {
	var model TrainingFlights
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return flightToEntity(&model), nil
}

// List returns all training flights ordered by date of flight descending
func (r *GormTrainingFlightRepository) List(ctx context.Context) ([]*entity.TrainingFlight, error) {
	var models []TrainingFlights
	result := r.db.WithContext(ctx).Order("date_of_flight DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.TrainingFlight, 0, len(models))
	for i := range models {
		entities = append(entities, flightToEntity(&models[i]))
	}
	return entities, nil
}

// ListByDateRange returns flights within the inclusive range, newest first
func (r *GormTrainingFlightRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.TrainingFlight, error) {
	var models []TrainingFlights
	result := r.db.WithContext(ctx).
		Where("date_of_flight BETWEEN ? AND ?", startDate, endDate).
		Order("date_of_flight DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.TrainingFlight, 0, len(models))
	for i := range models {
		entities = append(entities, flightToEntity(&models[i]))
	}
	return entities, nil
}

// Update applies the given column values to one row
func (r *GormTrainingFlightRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&TrainingFlights{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrFlightNotFound
	}
	return nil
}

// Delete removes one row
func (r *GormTrainingFlightRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&TrainingFlights{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrFlightNotFound
	}
	return nil
}
