package usecase

import (
	"context"
	"fmt"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
	"aams-service/pkg/utils"
)

// MovementService handles aircraft movement records
type MovementService struct {
	movements repository.MovementRepository
	logger    logger.Logger
}

// NewMovementService creates a new movement service
func NewMovementService(movements repository.MovementRepository, logger logger.Logger) *MovementService {
	return &MovementService{
		movements: movements,
		logger:    logger,
	}
}

// CreateMovementRequest is the inbound payload for a movement
type CreateMovementRequest struct {
	DateOfFlight     string `json:"date_of_flight"`
	TaskNumber       string `json:"task_number"`
	CallSign         string `json:"call_sign"`
	AircraftType     string `json:"aircraft_type"`
	DeptAerod        string `json:"dept_aerod"`
	ATD              string `json:"atd"`
	EnrouteEstimates string `json:"enroute_estimates"`
	DestAerod        string `json:"dest_aerod"`
	Purpose          string `json:"purpose"`
	ATA              string `json:"ata"`
	OccurrenceStatus string `json:"occurrence_status"`
	Remarks          string `json:"remarks"`
}

func (r *CreateMovementRequest) validate() error {
	if r.DateOfFlight == "" || r.TaskNumber == "" || r.AircraftType == "" || r.Purpose == "" {
		return entity.ErrMissingFields
	}
	return nil
}

// Empty ATD/ATA values are stored as NULL
func optionalTime(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateMovement records a new movement
func (s *MovementService) CreateMovement(ctx context.Context, req *CreateMovementRequest) (*entity.Movement, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	occurrenceStatus := req.OccurrenceStatus
	if occurrenceStatus == "" {
		occurrenceStatus = "In Progress"
	}

	movement := &entity.Movement{
		DateOfFlight:     req.DateOfFlight,
		TaskNumber:       req.TaskNumber,
		CallSign:         req.CallSign,
		AircraftType:     req.AircraftType,
		DeptAerod:        req.DeptAerod,
		ATD:              optionalTime(req.ATD),
		EnrouteEstimates: req.EnrouteEstimates,
		DestAerod:        req.DestAerod,
		Purpose:          req.Purpose,
		ATA:              optionalTime(req.ATA),
		OccurrenceStatus: occurrenceStatus,
		Remarks:          req.Remarks,
	}

	if err := s.movements.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}
	return movement, nil
}

// UpdateMovement replaces a movement's fields
func (s *MovementService) UpdateMovement(ctx context.Context, id uint, req *CreateMovementRequest) (*entity.Movement, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	current, err := s.movements.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load movement: %w", err)
	}
	if current == nil {
		return nil, entity.ErrMovementNotFound
	}

	fields := map[string]interface{}{
		"date_of_flight":    req.DateOfFlight,
		"task_number":       req.TaskNumber,
		"call_sign":         req.CallSign,
		"aircraft_type":     req.AircraftType,
		"dept_aerod":        req.DeptAerod,
		"atd":               optionalTime(req.ATD),
		"enroute_estimates": req.EnrouteEstimates,
		"dest_aerod":        req.DestAerod,
		"purpose":           req.Purpose,
		"ata":               optionalTime(req.ATA),
		"occurrence_status": req.OccurrenceStatus,
		"remarks":           req.Remarks,
	}

	if err := s.movements.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update movement: %w", err)
	}

	return s.movements.GetByID(ctx, id)
}

// DeleteMovement removes a movement
func (s *MovementService) DeleteMovement(ctx context.Context, id uint) error {
	return s.movements.Delete(ctx, id)
}

// GetMovement returns one movement by id
func (s *MovementService) GetMovement(ctx context.Context, id uint) (*entity.Movement, error) {
	movement, err := s.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, entity.ErrMovementNotFound
	}
	return movement, nil
}

// ListMovements returns all movements, newest flight date first
func (s *MovementService) ListMovements(ctx context.Context) ([]*entity.Movement, error) {
	return s.movements.List(ctx)
}

// ListMovementsByDate returns movements flown on one date
func (s *MovementService) ListMovementsByDate(ctx context.Context, date string) ([]*entity.Movement, error) {
	if !utils.IsValidDate(date) {
		return nil, entity.ErrInvalidDateFormat
	}
	return s.movements.ListByDate(ctx, date)
}
