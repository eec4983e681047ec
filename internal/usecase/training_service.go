package usecase

import (
	"context"
	"fmt"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
	"aams-service/pkg/utils"
)

// TrainingService handles training flight records
type TrainingService struct {
	flights repository.TrainingFlightRepository
	logger  logger.Logger
}

// NewTrainingService creates a new training flight service
func NewTrainingService(flights repository.TrainingFlightRepository, logger logger.Logger) *TrainingService {
	return &TrainingService{
		flights: flights,
		logger:  logger,
	}
}

// TrainingFlightRequest is the inbound payload for a training flight. ATD
// and ATA arrive as H:MM or HH:MM and are normalized for storage.
type TrainingFlightRequest struct {
	DateOfFlight string `json:"date_of_flight"`
	CallSign     string `json:"call_sign"`
	AircraftType string `json:"aircraft_type"`
	ATD          string `json:"atd"`
	Route        string `json:"route"`
	ATA          string `json:"ata"`
	Duty         string `json:"duty"`
	Crew         string `json:"crew"`
}

func normalizeFlightTimes(req *TrainingFlightRequest) (*string, *string, error) {
	atd, ok := utils.NormalizeClockTime(req.ATD)
	if !ok {
		return nil, nil, entity.ErrInvalidTimeFormat
	}
	ata, ok := utils.NormalizeClockTime(req.ATA)
	if !ok {
		return nil, nil, entity.ErrInvalidTimeFormat
	}
	return optionalTime(atd), optionalTime(ata), nil
}

// withFlightTime fills the derived total flight time on an entity
func withFlightTime(flight *entity.TrainingFlight) *entity.TrainingFlight {
	if flight != nil {
		flight.TotalFlightTime = utils.FlightTime(flight.ATD, flight.ATA)
	}
	return flight
}

// CreateFlight records a new training flight
func (s *TrainingService) CreateFlight(ctx context.Context, req *TrainingFlightRequest) (*entity.TrainingFlight, error) {
	atd, ata, err := normalizeFlightTimes(req)
	if err != nil {
		return nil, err
	}

	flight := &entity.TrainingFlight{
		DateOfFlight: req.DateOfFlight,
		CallSign:     req.CallSign,
		AircraftType: req.AircraftType,
		ATD:          atd,
		Route:        req.Route,
		ATA:          ata,
		Duty:         req.Duty,
		Crew:         req.Crew,
	}

	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to create training flight: %w", err)
	}
	return withFlightTime(flight), nil
}

// UpdateFlight replaces a training flight's fields
func (s *TrainingService) UpdateFlight(ctx context.Context, id uint, req *TrainingFlightRequest) (*entity.TrainingFlight, error) {
	atd, ata, err := normalizeFlightTimes(req)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"date_of_flight": req.DateOfFlight,
		"call_sign":      req.CallSign,
		"aircraft_type":  req.AircraftType,
		"atd":            atd,
		"route":          req.Route,
		"ata":            ata,
		"duty":           req.Duty,
		"crew":           req.Crew,
	}

	if err := s.flights.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, entity.ErrFlightNotFound
	}
	return withFlightTime(updated), nil
}

// DeleteFlight removes a training flight
func (s *TrainingService) DeleteFlight(ctx context.Context, id uint) error {
	return s.flights.Delete(ctx, id)
}

// ListFlights returns all training flights with their derived flight times
func (s *TrainingService) ListFlights(ctx context.Context) ([]*entity.TrainingFlight, error) {
	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, flight := range flights {
		withFlightTime(flight)
	}
	return flights, nil
}
