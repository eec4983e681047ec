package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aams-service/internal/domain/entity"
	"aams-service/internal/usecase"
)

// AuthHandler exposes operator login over HTTP
type AuthHandler struct {
	authService *usecase.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns the account's access level
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	accessLevel, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, entity.ErrInvalidCredentials):
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message":      "Login successful",
		"access_level": accessLevel,
	})
}
