package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aams-service/internal/api"
	apimw "aams-service/internal/api/middleware"
	"aams-service/internal/domain/repository"
	"aams-service/internal/infrastructure/config"
	"aams-service/internal/infrastructure/oauth"
	"aams-service/internal/infrastructure/persistence"
	"aams-service/internal/interface/mailer"
	storerepo "aams-service/internal/interface/repository"
	"aams-service/internal/usecase"
	"aams-service/pkg/logger"
	"aams-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting AAMS Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB for the notification dispatch log
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	taskRepo := storerepo.NewGormTaskRepository(gormDB)
	movementRepo := storerepo.NewGormMovementRepository(gormDB)
	trainingRepo := storerepo.NewGormTrainingFlightRepository(gormDB)
	userRepo := storerepo.NewGormUserRepository(gormDB)
	notificationLog := storerepo.NewMongoNotificationLogRepository(mongoDB)

	// Set up metrics
	m := metrics.NewMetrics("aams")

	// Set up Gmail OAuth and the notification sender
	var sender repository.NotificationSender
	if cfg.GmailClientID != "" && cfg.GmailRefreshToken != "" {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		sender, err = mailer.NewGmailSender(ctx, gmailOAuth.GetTokenSource(ctx), cfg.EmailFrom, log)
		if err != nil {
			log.Fatal("Failed to create Gmail sender", "error", err)
		}
	} else {
		log.Warn("Gmail credentials not configured, notifications will be logged only")
		sender = mailer.NewLogSender(log)
	}

	// Start the notification dispatcher
	notifier := usecase.NewMailNotifier(sender, notificationLog, cfg.TaskNotificationRecipients, log, m)
	go notifier.Start(ctx)

	// Set up services
	taskService := usecase.NewTaskService(taskRepo, notifier, log, m, time.Now)
	movementService := usecase.NewMovementService(movementRepo, log)
	trainingService := usecase.NewTrainingService(trainingRepo, log)
	reportService := usecase.NewReportService(taskRepo, movementRepo, trainingRepo)
	authService := usecase.NewAuthService(userRepo, log)

	// Set up HTTP server
	router := api.NewRouter(api.RouterDeps{
		TaskService:     taskService,
		MovementService: movementService,
		TrainingService: trainingService,
		ReportService:   reportService,
		AuthService:     authService,
		RateLimiter:     apimw.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitRequests),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the notification dispatcher

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("AAMS Service stopped")
}
