package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aams-service/internal/domain/entity"
	"aams-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// TaskHandler exposes the aircraft task lifecycle over HTTP
type TaskHandler struct {
	taskService *usecase.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks, newest flight date first
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// ListTasksByDate returns tasks flying on one YYYY-MM-DD date
func (h *TaskHandler) ListTasksByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	tasks, err := h.taskService.ListTasksByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDateFormat) {
			respondMessage(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// CreateTask creates one task row per affected date
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req entity.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tasks, err := h.taskService.CreateTask(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Required fields are missing")
		case errors.Is(err, entity.ErrInvalidTaskStatus):
			respondMessage(w, http.StatusBadRequest, "Invalid task status")
		default:
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, tasks)
}

// ConfirmTask mints a confirmed number and applies it to the task and its
// group siblings
func (h *TaskHandler) ConfirmTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskService.ConfirmTask(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			respondMessage(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, entity.ErrInvalidTransition):
			respondMessage(w, http.StatusBadRequest, "Only provisional or military tasks can be confirmed")
		default:
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Task confirmed successfully",
		"taskNumber":  task.TaskNumber,
		"task_status": task.TaskStatus,
		"task":        task,
	})
}

// UpdateTask merges a partial patch into a task
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var patch entity.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			respondMessage(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, entity.ErrInvalidTaskStatus):
			respondMessage(w, http.StatusBadRequest, "Invalid task status")
		default:
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask removes one task row; group siblings stay
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondMessage(w, http.StatusOK, "Task deleted successfully")
}
