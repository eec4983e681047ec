package usecase

import (
	"context"
	"errors"
	"testing"

	"aams-service/internal/domain/entity"
	"aams-service/pkg/logger"
)

type MockTrainingFlightRepository struct {
	CreateFunc          func(ctx context.Context, flight *entity.TrainingFlight) error
	GetByIDFunc         func(ctx context.Context, id uint) (*entity.TrainingFlight, error)
	ListFunc            func(ctx context.Context) ([]*entity.TrainingFlight, error)
	ListByDateRangeFunc func(ctx context.Context, startDate, endDate string) ([]*entity.TrainingFlight, error)
	UpdateFunc          func(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *MockTrainingFlightRepository) Create(ctx context.Context, flight *entity.TrainingFlight) error {
	return m.CreateFunc(ctx, flight)
}

func (m *MockTrainingFlightRepository) GetByID(ctx context.Context, id uint) (*entity.TrainingFlight, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockTrainingFlightRepository) List(ctx context.Context) ([]*entity.TrainingFlight, error) {
	return m.ListFunc(ctx)
}

func (m *MockTrainingFlightRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.TrainingFlight, error) {
	return m.ListByDateRangeFunc(ctx, startDate, endDate)
}

func (m *MockTrainingFlightRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return m.UpdateFunc(ctx, id, fields)
}

func (m *MockTrainingFlightRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func TestCreateFlightNormalizesAndDerivesTime(t *testing.T) {
	var inserted *entity.TrainingFlight
	repo := &MockTrainingFlightRepository{
		CreateFunc: func(ctx context.Context, flight *entity.TrainingFlight) error {
			inserted = flight
			return nil
		},
	}
	service := NewTrainingService(repo, logger.NewNop())

	flight, err := service.CreateFlight(context.Background(), &TrainingFlightRequest{
		DateOfFlight: "2025-01-20",
		CallSign:     "AF601",
		AircraftType: "L-15",
		ATD:          "8:30",
		ATA:          "10:15",
		Duty:         "Circuits",
	})
	if err != nil {
		t.Fatalf("CreateFlight returned error: %v", err)
	}
	if inserted.ATD == nil || *inserted.ATD != "08:30:00" {
		t.Errorf("stored ATD = %v, want 08:30:00", inserted.ATD)
	}
	if inserted.ATA == nil || *inserted.ATA != "10:15:00" {
		t.Errorf("stored ATA = %v, want 10:15:00", inserted.ATA)
	}
	if flight.TotalFlightTime != "01:45" {
		t.Errorf("total flight time = %q, want 01:45", flight.TotalFlightTime)
	}
}

func TestCreateFlightOpenLegHasNoFlightTime(t *testing.T) {
	repo := &MockTrainingFlightRepository{
		CreateFunc: func(ctx context.Context, flight *entity.TrainingFlight) error {
			return nil
		},
	}
	service := NewTrainingService(repo, logger.NewNop())

	flight, err := service.CreateFlight(context.Background(), &TrainingFlightRequest{
		DateOfFlight: "2025-01-20",
		AircraftType: "L-15",
		ATD:          "08:30",
	})
	if err != nil {
		t.Fatalf("CreateFlight returned error: %v", err)
	}
	if flight.ATA != nil {
		t.Errorf("empty ATA must be stored as NULL, got %q", *flight.ATA)
	}
	if flight.TotalFlightTime != "" {
		t.Errorf("total flight time = %q, want empty for an open leg", flight.TotalFlightTime)
	}
}

func TestCreateFlightRejectsBadTime(t *testing.T) {
	service := NewTrainingService(&MockTrainingFlightRepository{}, logger.NewNop())

	_, err := service.CreateFlight(context.Background(), &TrainingFlightRequest{
		DateOfFlight: "2025-01-20",
		AircraftType: "L-15",
		ATD:          "25:00",
	})
	if !errors.Is(err, entity.ErrInvalidTimeFormat) {
		t.Errorf("CreateFlight(bad ATD) error = %v, want ErrInvalidTimeFormat", err)
	}
}
