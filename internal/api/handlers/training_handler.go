package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aams-service/internal/domain/entity"
	"aams-service/internal/usecase"
)

// TrainingHandler exposes training flights over HTTP
type TrainingHandler struct {
	trainingService *usecase.TrainingService
}

// NewTrainingHandler creates a new training flight handler
func NewTrainingHandler(trainingService *usecase.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// ListFlights returns all training flights with derived flight times
func (h *TrainingHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.trainingService.ListFlights(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// CreateFlight records a new training flight
func (h *TrainingHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req usecase.TrainingFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	flight, err := h.trainingService.CreateFlight(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTimeFormat) {
			respondMessage(w, http.StatusBadRequest, "Invalid time format. Please use HH:MM format (24-hour).")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database operation failed")
		return
	}

	respondJSON(w, http.StatusCreated, flight)
}

// UpdateFlight replaces a training flight's fields
func (h *TrainingHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid flight id")
		return
	}

	var req usecase.TrainingFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	flight, err := h.trainingService.UpdateFlight(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidTimeFormat):
			respondMessage(w, http.StatusBadRequest, "Invalid time format. Please use HH:MM format (24-hour).")
		case errors.Is(err, entity.ErrFlightNotFound):
			respondMessage(w, http.StatusNotFound, "Flight not found")
		default:
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, flight)
}

// DeleteFlight removes one training flight
func (h *TrainingHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid flight id")
		return
	}

	if err := h.trainingService.DeleteFlight(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrFlightNotFound) {
			respondMessage(w, http.StatusNotFound, "Flight not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondMessage(w, http.StatusOK, "Flight deleted successfully")
}
