package usecase

import (
	"context"
	"errors"
	"testing"

	"aams-service/internal/domain/entity"
)

func TestGenerateValidation(t *testing.T) {
	service := NewReportService(nil, nil, nil)

	tests := []struct {
		name   string
		module string
		start  string
		end    string
		want   error
	}{
		{"unknown module", "users", "2025-01-01", "2025-01-31", entity.ErrInvalidModule},
		{"bad start date", ModuleTasks, "01-01-2025", "2025-01-31", entity.ErrInvalidDateFormat},
		{"bad end date", ModuleTasks, "2025-01-01", "tomorrow", entity.ErrInvalidDateFormat},
		{"inverted range", ModuleTasks, "2025-02-01", "2025-01-01", entity.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Generate(context.Background(), tt.module, tt.start, tt.end); !errors.Is(err, tt.want) {
				t.Errorf("Generate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateTrainingReportDerivesFlightTime(t *testing.T) {
	atd, ata := "08:00:00", "09:30:00"
	flights := &MockTrainingFlightRepository{
		ListByDateRangeFunc: func(ctx context.Context, startDate, endDate string) ([]*entity.TrainingFlight, error) {
			return []*entity.TrainingFlight{
				{ID: 1, DateOfFlight: "2025-01-20", ATD: &atd, ATA: &ata},
			}, nil
		},
	}
	service := NewReportService(nil, nil, flights)

	result, err := service.Generate(context.Background(), ModuleTraining, "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	rows, ok := result.([]*entity.TrainingFlight)
	if !ok || len(rows) != 1 {
		t.Fatalf("unexpected result %T", result)
	}
	if rows[0].TotalFlightTime != "01:30" {
		t.Errorf("total flight time = %q, want 01:30", rows[0].TotalFlightTime)
	}
}

func TestGenerateSingleDayRangeAllowed(t *testing.T) {
	tasks := &MockTaskRepository{
		ListByDateRangeFunc: func(ctx context.Context, startDate, endDate string) ([]*entity.Task, error) {
			if startDate != endDate {
				t.Errorf("range = (%s, %s), want identical bounds", startDate, endDate)
			}
			return nil, nil
		},
	}
	service := NewReportService(tasks, nil, nil)

	if _, err := service.Generate(context.Background(), ModuleTasks, "2025-01-20", "2025-01-20"); err != nil {
		t.Errorf("single-day range should be valid, got %v", err)
	}
}
