package handlers

import (
	"errors"
	"net/http"

	"aams-service/internal/domain/entity"
	"aams-service/internal/usecase"
)

// ReportHandler exposes date-range reports over HTTP
type ReportHandler struct {
	reportService *usecase.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *usecase.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Generate serves GET /api/reports?module=&startDate=&endDate=
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	module := query.Get("module")
	startDate := query.Get("startDate")
	endDate := query.Get("endDate")

	if startDate == "" || endDate == "" {
		respondMessage(w, http.StatusBadRequest, "Both start and end dates are required")
		return
	}

	rows, err := h.reportService.Generate(r.Context(), module, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidModule):
			respondMessage(w, http.StatusBadRequest, "Invalid module specified")
		case errors.Is(err, entity.ErrInvalidDateFormat):
			respondMessage(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		case errors.Is(err, entity.ErrInvalidDateRange):
			respondMessage(w, http.StatusBadRequest, "Start date must be before end date")
		default:
			respondMessage(w, http.StatusInternalServerError, "Failed to generate report")
		}
		return
	}

	respondJSON(w, http.StatusOK, rows)
}
