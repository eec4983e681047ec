package repository

import (
	"context"
	"errors"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/utils"

	"gorm.io/gorm"
)

// GormTaskRepository implements the TaskRepository interface
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM aircraft task repository
func NewGormTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &GormTaskRepository{
		db: db,
	}
}

// AircraftTasks GORM model for database mapping
type AircraftTasks struct {
	ID                       uint    `gorm:"primaryKey"`
	TaskNumber               string  `gorm:"column:task_number;index"`
	TaskStatus               string  `gorm:"column:task_status;index"`
	DateOfFlight             string  `gorm:"column:date_of_flight;index"`
	AircraftType             string  `gorm:"column:aircraft_type"`
	EstimatedTimeOfDeparture string  `gorm:"column:estimated_time_of_departure"`
	Route                    string  `gorm:"column:route"`
	Purpose                  string  `gorm:"column:purpose"`
	Crew                     string  `gorm:"column:crew"`
	Pax                      string  `gorm:"column:pax"`
	OccurrenceStatus         string  `gorm:"column:occurrence_status"`
	Authority                string  `gorm:"column:authority"`
	AffectedDates            string  `gorm:"column:affected_dates"`
	GroupID                  *string `gorm:"column:group_id;index"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName overrides the default table name
func (AircraftTasks) TableName() string {
	return "aircraft_tasks"
}

func taskToEntity(model *AircraftTasks) *entity.Task {
	return &entity.Task{
		ID:                       model.ID,
		TaskNumber:               model.TaskNumber,
		TaskStatus:               model.TaskStatus,
		DateOfFlight:             model.DateOfFlight,
		AircraftType:             model.AircraftType,
		EstimatedTimeOfDeparture: model.EstimatedTimeOfDeparture,
		Route:                    model.Route,
		Purpose:                  model.Purpose,
		Crew:                     model.Crew,
		Pax:                      model.Pax,
		OccurrenceStatus:         model.OccurrenceStatus,
		Authority:                model.Authority,
		AffectedDates:            utils.DatesFromJSON(model.AffectedDates),
		GroupID:                  model.GroupID,
		CreatedAt:                model.CreatedAt,
		UpdatedAt:                model.UpdatedAt,
	}
}

func tasksToEntities(models []AircraftTasks) []*entity.Task {
	entities := make([]*entity.Task, 0, len(models))
	for i := range models {
		entities = append(entities, taskToEntity(&models[i]))
	}
	return entities
}

// Create inserts one aircraft task row
func (r *GormTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	model := AircraftTasks{
		TaskNumber:               task.TaskNumber,
		TaskStatus:               task.TaskStatus,
		DateOfFlight:             task.DateOfFlight,
		AircraftType:             task.AircraftType,
		EstimatedTimeOfDeparture: task.EstimatedTimeOfDeparture,
		Route:                    task.Route,
		Purpose:                  task.Purpose,
		Crew:                     task.Crew,
		Pax:                      task.Pax,
		OccurrenceStatus:         task.OccurrenceStatus,
		Authority:                task.Authority,
		AffectedDates:            utils.DatesToJSON(task.AffectedDates),
		GroupID:                  task.GroupID,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	// Update the entity with the generated ID
	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	task.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID finds a task by id; a missing row yields (nil, nil)
func (r *GormTaskRepository) GetByID(ctx context.Context, id uint) (*entity.Task, error) {
	var model AircraftTasks
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return taskToEntity(&model), nil
}

// List returns all tasks ordered by date of flight descending
func (r *GormTaskRepository) List(ctx context.Context) ([]*entity.Task, error) {
	var models []AircraftTasks
	result := r.db.WithContext(ctx).Order("date_of_flight DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(models), nil
}

// ListByDate returns all tasks flying on the given date
func (r *GormTaskRepository) ListByDate(ctx context.Context, date string) ([]*entity.Task, error) {
	var models []AircraftTasks
	result := r.db.WithContext(ctx).Where("date_of_flight = ?", date).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(models), nil
}

// ListByDateRange returns tasks within the inclusive date range, newest first
func (r *GormTaskRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Task, error) {
	var models []AircraftTasks
	result := r.db.WithContext(ctx).
		Where("date_of_flight BETWEEN ? AND ?", startDate, endDate).
		Order("date_of_flight DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(models), nil
}

// ListByGroupID returns every row sharing a group id
func (r *GormTaskRepository) ListByGroupID(ctx context.Context, groupID string) ([]*entity.Task, error) {
	var models []AircraftTasks
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(models), nil
}

// ConfirmedNumbersWithSuffix returns the numbers of confirmed tasks ending
// with the given /MON/YY suffix
func (r *GormTaskRepository) ConfirmedNumbersWithSuffix(ctx context.Context, suffix string) ([]string, error) {
	var numbers []string
	result := r.db.WithContext(ctx).
		Model(&AircraftTasks{}).
		Where("task_number LIKE ?", "%"+suffix).
		Where("task_status = ?", entity.StatusConfirmed).
		Pluck("task_number", &numbers)
	if result.Error != nil {
		return nil, result.Error
	}
	return numbers, nil
}

// Update applies the given column values to one row
func (r *GormTaskRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&AircraftTasks{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// UpdateGroup applies the given column values to every row in a group except
// excludeID
func (r *GormTaskRepository) UpdateGroup(ctx context.Context, groupID string, excludeID uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&AircraftTasks{}).
		Where("group_id = ?", groupID).
		Where("id <> ?", excludeID).
		Updates(fields)
	return result.Error
}

// Delete removes one row
func (r *GormTaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AircraftTasks{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrTaskNotFound
	}
	return nil
}
