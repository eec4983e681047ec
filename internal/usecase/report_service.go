package usecase

import (
	"context"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/utils"
)

// Report modules
const (
	ModuleTasks     = "tasks"
	ModuleMovements = "movements"
	ModuleTraining  = "training"
)

// ReportService produces date-range extracts of the three record types
type ReportService struct {
	tasks     repository.TaskRepository
	movements repository.MovementRepository
	flights   repository.TrainingFlightRepository
}

// NewReportService creates a new report service
func NewReportService(
	tasks repository.TaskRepository,
	movements repository.MovementRepository,
	flights repository.TrainingFlightRepository,
) *ReportService {
	return &ReportService{
		tasks:     tasks,
		movements: movements,
		flights:   flights,
	}
}

// Generate returns all rows of the requested module within the inclusive
// date range, newest first. Training rows carry their derived flight time.
func (s *ReportService) Generate(ctx context.Context, module, startDate, endDate string) (interface{}, error) {
	switch module {
	case ModuleTasks, ModuleMovements, ModuleTraining:
	default:
		return nil, entity.ErrInvalidModule
	}

	if !utils.IsValidDate(startDate) || !utils.IsValidDate(endDate) {
		return nil, entity.ErrInvalidDateFormat
	}
	start, _ := time.Parse(utils.DateLayout, startDate)
	end, _ := time.Parse(utils.DateLayout, endDate)
	if start.After(end) {
		return nil, entity.ErrInvalidDateRange
	}

	switch module {
	case ModuleTasks:
		return s.tasks.ListByDateRange(ctx, startDate, endDate)
	case ModuleMovements:
		return s.movements.ListByDateRange(ctx, startDate, endDate)
	default:
		flights, err := s.flights.ListByDateRange(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}
		for _, flight := range flights {
			withFlightTime(flight)
		}
		return flights, nil
	}
}
