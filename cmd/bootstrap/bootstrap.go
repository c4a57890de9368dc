package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ortho-practice/config"
	deliveryHttp "go-ortho-practice/internal/delivery/http"
	"go-ortho-practice/internal/delivery/http/handler"
	"go-ortho-practice/internal/delivery/http/middleware"
	"go-ortho-practice/internal/repository"
	"go-ortho-practice/internal/service"
	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized.
// All state is in memory: the stores are created empty, seeded with the
// sample dataset, and discarded on shutdown.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize server with all layers
	server, err := initializeServer(cfg)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize in-memory stores
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	photoRepo := repository.NewPhotoRepository()
	activityRepo := repository.NewActivityRepository(cfg.Upload.ActivityFeedSize)

	// Load the sample dataset
	if err := repository.Seed(context.Background(), patientRepo, appointmentRepo, photoRepo); err != nil {
		return nil, fmt.Errorf("failed to seed sample data: %w", err)
	}
	log.Info("Sample data loaded")

	// Initialize services
	activityService := service.NewActivityService(log, activityRepo)

	// Classification jitter source
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, activityService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, activityService, cfg.Schedule, cfg.App.Practitioner)
	photoUsecase := usecase.NewPhotoUsecase(log, photoRepo)
	searchUsecase := usecase.NewSearchUsecase(log, patientRepo, appointmentRepo, photoRepo, cfg.Search)
	uploadUsecase := usecase.NewSmartUploadUsecase(log, patientRepo, photoRepo, activityService, rng, cfg.Upload)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, appointmentRepo, photoRepo, activityService)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	photoHandler := handler.NewPhotoHandler(photoUsecase)
	searchHandler := handler.NewSearchHandler(searchUsecase)
	uploadHandler := handler.NewSmartUploadHandler(uploadUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, appointmentHandler, photoHandler, searchHandler, uploadHandler, dashboardHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully; in-memory state is simply dropped
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
