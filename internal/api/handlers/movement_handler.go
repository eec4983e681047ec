package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aams-service/internal/domain/entity"
	"aams-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// MovementHandler exposes aircraft movements over HTTP
type MovementHandler struct {
	movementService *usecase.MovementService
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(movementService *usecase.MovementService) *MovementHandler {
	return &MovementHandler{
		movementService: movementService,
	}
}

// ListMovements returns all movements, newest flight date first
func (h *MovementHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.movementService.ListMovements(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, movements)
}

// GetMovement returns one movement by id
func (h *MovementHandler) GetMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid movement id")
		return
	}

	movement, err := h.movementService.GetMovement(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrMovementNotFound) {
			respondMessage(w, http.StatusNotFound, "Movement not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, movement)
}

// ListMovementsByDate returns movements flown on one YYYY-MM-DD date
func (h *MovementHandler) ListMovementsByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	movements, err := h.movementService.ListMovementsByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDateFormat) {
			respondMessage(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, movements)
}

// CreateMovement records a new movement
func (h *MovementHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	movement, err := h.movementService.CreateMovement(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrMissingFields) {
			respondMessage(w, http.StatusBadRequest, "Required fields are missing")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusCreated, movement)
}

// UpdateMovement replaces a movement's fields
func (h *MovementHandler) UpdateMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid movement id")
		return
	}

	var req usecase.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	movement, err := h.movementService.UpdateMovement(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Required fields are missing")
		case errors.Is(err, entity.ErrMovementNotFound):
			respondMessage(w, http.StatusNotFound, "Movement not found")
		default:
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Movement updated successfully",
		"movement": movement,
	})
}

// DeleteMovement removes one movement
func (h *MovementHandler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid movement id")
		return
	}

	if err := h.movementService.DeleteMovement(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrMovementNotFound) {
			respondMessage(w, http.StatusNotFound, "Movement not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondMessage(w, http.StatusOK, "Movement deleted successfully")
}
