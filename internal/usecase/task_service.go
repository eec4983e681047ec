package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
	"aams-service/pkg/metrics"
	"aams-service/pkg/utils"

	"github.com/google/uuid"
)

// TaskService orchestrates the aircraft task lifecycle: creation, updates,
// confirmation and deletion, including multi-date task groups.
type TaskService struct {
	tasks    repository.TaskRepository
	notifier Notifier
	logger   logger.Logger
	metrics  *metrics.Metrics
	now      Clock

	// confirmMu serializes confirmed-number minting with the writes that
	// depend on it, so two concurrent confirmations in the same month cannot
	// mint the same sequence.
	confirmMu sync.Mutex
}

// NewTaskService creates a new task service. m may be nil; a nil clock falls
// back to time.Now.
func NewTaskService(
	tasks repository.TaskRepository,
	notifier Notifier,
	logger logger.Logger,
	m *metrics.Metrics,
	clock Clock,
) *TaskService {
	if clock == nil {
		clock = time.Now
	}
	return &TaskService{
		tasks:    tasks,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
		now:      clock,
	}
}

// CreateTask creates one task row per affected date. All rows minted in one
// call share a single task number and, when there is more than one date, a
// fresh group id.
func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) ([]*entity.Task, error) {
	if req.TaskStatus == "" || req.DateOfFlight == "" || req.AircraftType == "" {
		return nil, entity.ErrMissingFields
	}
	if !validStatus(req.TaskStatus) {
		return nil, entity.ErrInvalidTaskStatus
	}

	dates := utils.NormalizeDateList(req.AffectedDates)
	if len(dates) == 0 {
		// No usable affected dates: fall back to the primary flight date
		dates = []string{req.DateOfFlight}
	}

	var groupID *string
	if len(dates) > 1 {
		id := uuid.NewString()
		groupID = &id
	}

	occurrenceStatus := req.OccurrenceStatus
	if occurrenceStatus == "" {
		occurrenceStatus = "Pending"
	}

	taskNumber, unlock, err := s.mintNumber(ctx, req.TaskStatus)
	if err != nil {
		return nil, err
	}
	defer unlock()

	created := make([]*entity.Task, 0, len(dates))
	for _, date := range dates {
		task := &entity.Task{
			TaskNumber:               taskNumber,
			TaskStatus:               req.TaskStatus,
			DateOfFlight:             date,
			AircraftType:             req.AircraftType,
			EstimatedTimeOfDeparture: req.EstimatedTimeOfDeparture,
			Route:                    req.Route,
			Purpose:                  req.Purpose,
			Crew:                     req.Crew,
			Pax:                      req.Pax,
			OccurrenceStatus:         occurrenceStatus,
			Authority:                req.Authority,
			AffectedDates:            dates,
			GroupID:                  groupID,
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to create task row: %w", err)
		}
		created = append(created, task)
	}

	if s.metrics != nil {
		s.metrics.TasksCreated.Add(float64(len(created)))
	}
	s.logger.Info("Task created",
		"taskNumber", taskNumber,
		"status", req.TaskStatus,
		"rows", len(created))

	s.notifier.Dispatch(entity.ActionReceived, created[0])
	return created, nil
}

// mintNumber produces the shared task number for a creation. For confirmed
// tasks the confirm mutex is held until the returned unlock runs, keeping
// the max-scan and the dependent inserts in one critical section.
func (s *TaskService) mintNumber(ctx context.Context, status string) (string, func(), error) {
	if status != entity.StatusConfirmed {
		prefix, err := PrefixForStatus(status)
		if err != nil {
			return "", nil, err
		}
		return ProvisionalNumber(prefix, s.now()), func() {}, nil
	}

	s.confirmMu.Lock()
	number, err := s.nextConfirmedNumber(ctx)
	if err != nil {
		s.confirmMu.Unlock()
		return "", nil, err
	}
	return number, s.confirmMu.Unlock, nil
}

func (s *TaskService) nextConfirmedNumber(ctx context.Context) (string, error) {
	now := s.now()
	existing, err := s.tasks.ConfirmedNumbersWithSuffix(ctx, numberSuffix(now))
	if err != nil {
		return "", fmt.Errorf("failed to scan confirmed numbers: %w", err)
	}
	return NextConfirmedNumber(existing, now), nil
}

// UpdateTask merges a patch into an existing task. A status change to a
// non-confirmed status regenerates the task number; a change to confirmed
// only updates the status — confirmed numbers are minted exclusively by
// ConfirmTask.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, patch *entity.UpdateTaskRequest) (*entity.Task, error) {
	current, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if current == nil {
		return nil, entity.ErrTaskNotFound
	}

	fields := patchFields(patch)

	if patch.TaskStatus != nil {
		newStatus := *patch.TaskStatus
		if newStatus != current.TaskStatus && newStatus != entity.StatusConfirmed {
			prefix, err := PrefixForStatus(newStatus)
			if err != nil {
				return nil, err
			}
			// Overrides any task_number supplied by the caller
			fields["task_number"] = ProvisionalNumber(prefix, s.now())
		}
	}

	if patch.AffectedDates != nil {
		// Unlike Create, an empty result is stored as an empty list
		fields["affected_dates"] = utils.DatesToJSON(utils.NormalizeDateList(patch.AffectedDates))
	}

	if len(fields) > 0 {
		if err := s.tasks.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	updated, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	s.notifier.Dispatch(entity.ActionUpdated, updated)
	return updated, nil
}

// ConfirmTask mints a confirmed number for a provisional or military task
// and applies it, together with the confirmed status, to the task and every
// group sibling.
func (s *TaskService) ConfirmTask(ctx context.Context, id uint) (*entity.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}
	if !entity.IsConfirmable(task.TaskStatus) {
		return nil, entity.ErrInvalidTransition
	}

	s.confirmMu.Lock()
	confirmedNumber, err := s.nextConfirmedNumber(ctx)
	if err != nil {
		s.confirmMu.Unlock()
		return nil, err
	}

	fields := map[string]interface{}{
		"task_status": entity.StatusConfirmed,
		"task_number": confirmedNumber,
	}
	if err := s.tasks.Update(ctx, id, fields); err != nil {
		s.confirmMu.Unlock()
		return nil, fmt.Errorf("failed to confirm task: %w", err)
	}

	if task.GroupID != nil {
		if err := s.tasks.UpdateGroup(ctx, *task.GroupID, id, fields); err != nil {
			s.confirmMu.Unlock()
			// The target row is already confirmed; surface the split state
			return nil, &entity.PartialGroupConfirmError{
				GroupID:    *task.GroupID,
				TaskNumber: confirmedNumber,
				Err:        err,
			}
		}
		s.logger.Info("Confirmed all tasks in group",
			"groupId", *task.GroupID,
			"taskNumber", confirmedNumber)
	}
	s.confirmMu.Unlock()

	if s.metrics != nil {
		s.metrics.TasksConfirmed.Inc()
	}

	updated, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	s.notifier.Dispatch(entity.ActionConfirmed, updated)
	return updated, nil
}

// DeleteTask removes one task row. Group siblings are untouched; each row of
// a multi-date task is deleted independently.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load task: %w", err)
	}
	if task == nil {
		return entity.ErrTaskNotFound
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	// Notify with the snapshot captured before deletion
	s.notifier.Dispatch(entity.ActionRemoved, task)
	return nil
}

// GetTask returns one task by id
func (s *TaskService) GetTask(ctx context.Context, id uint) (*entity.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}
	return task, nil
}

// ListTasks returns all tasks, newest flight date first
func (s *TaskService) ListTasks(ctx context.Context) ([]*entity.Task, error) {
	return s.tasks.List(ctx)
}

// ListTasksByDate returns tasks flying on one date
func (s *TaskService) ListTasksByDate(ctx context.Context, date string) ([]*entity.Task, error) {
	if !utils.IsValidDate(date) {
		return nil, entity.ErrInvalidDateFormat
	}
	return s.tasks.ListByDate(ctx, date)
}

func validStatus(status string) bool {
	switch status {
	case entity.StatusProvisional, entity.StatusMilitary, entity.StatusCivil, entity.StatusConfirmed:
		return true
	}
	return false
}

func patchFields(patch *entity.UpdateTaskRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	set("task_number", patch.TaskNumber)
	set("task_status", patch.TaskStatus)
	set("date_of_flight", patch.DateOfFlight)
	set("aircraft_type", patch.AircraftType)
	set("estimated_time_of_departure", patch.EstimatedTimeOfDeparture)
	set("route", patch.Route)
	set("purpose", patch.Purpose)
	set("crew", patch.Crew)
	set("pax", patch.Pax)
	set("occurrence_status", patch.OccurrenceStatus)
	set("authority", patch.Authority)
	return fields
}
