package api

import (
	"net/http"

	"aams-service/internal/api/handlers"
	apimw "aams-service/internal/api/middleware"
	"aams-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps carries the services the HTTP surface exposes
type RouterDeps struct {
	TaskService     *usecase.TaskService
	MovementService *usecase.MovementService
	TrainingService *usecase.TrainingService
	ReportService   *usecase.ReportService
	AuthService     *usecase.AuthService
	RateLimiter     *apimw.RateLimiter
}

// NewRouter builds the chi router with all routes mounted
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	taskHandler := handlers.NewTaskHandler(deps.TaskService)
	movementHandler := handlers.NewMovementHandler(deps.MovementService)
	trainingHandler := handlers.NewTrainingHandler(deps.TrainingService)
	reportHandler := handlers.NewReportHandler(deps.ReportService)
	authHandler := handlers.NewAuthHandler(deps.AuthService)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.Handler)
			}
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/{date}", taskHandler.ListTasksByDate)
			r.Put("/{id}", taskHandler.UpdateTask)
			r.Delete("/{id}", taskHandler.DeleteTask)
			r.Post("/{id}/confirm", taskHandler.ConfirmTask)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", movementHandler.ListMovements)
			r.Post("/", movementHandler.CreateMovement)
			r.Get("/id/{id}", movementHandler.GetMovement)
			r.Get("/date/{date}", movementHandler.ListMovementsByDate)
			r.Put("/{id}", movementHandler.UpdateMovement)
			r.Delete("/{id}", movementHandler.DeleteMovement)
		})

		r.Route("/training", func(r chi.Router) {
			r.Get("/", trainingHandler.ListFlights)
			r.Post("/", trainingHandler.CreateFlight)
			r.Put("/{id}", trainingHandler.UpdateFlight)
			r.Delete("/{id}", trainingHandler.DeleteFlight)
		})

		r.Get("/reports", reportHandler.Generate)

		r.Post("/auth/login", authHandler.Login)
	})

	return r
}
