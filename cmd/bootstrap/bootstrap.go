package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-records-service/config"
	deliveryHttp "health-records-service/internal/delivery/http"
	"health-records-service/internal/delivery/http/handler"
	"health-records-service/internal/delivery/http/middleware"
	"health-records-service/internal/infrastructure/cache"
	"health-records-service/internal/infrastructure/database"
	"health-records-service/internal/repository"
	"health-records-service/internal/service"
	"health-records-service/internal/usecase"
	"health-records-service/pkg/jwt"
	"health-records-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.App)
	app := &App{Config: cfg, Log: log}

	if cfg.DB.AutoMigrate {
		if err := Migrate(log, cfg.DB, func(m *database.Migrator) error { return m.Up() }); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(log, cfg.DB)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(log, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// Migrate opens a migrator, runs fn and closes it.
func Migrate(log *logrus.Logger, cfg config.DBConfig, fn func(*database.Migrator) error) error {
	migrator, err := database.NewMigrator(log, cfg)
	if err != nil {
		return err
	}
	return errors.Join(fn(migrator), migrator.Close())
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientProfileRepo := repository.NewPatientProfileRepository(db)
	doctorProfileRepo := repository.NewDoctorProfileRepository(db)
	recordRepo := repository.NewMedicalRecordRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	ids := service.NewIDGenerator()
	sessions := service.NewSessionStore(log, redisClient)
	auditService := service.NewAuditService(log, auditLogRepo)
	analysisClient := service.NewAnalysisClient(log, cfg.Analysis)
	signInLimiter, err := service.NewFixedWindowLimiter(
		log,
		redisClient,
		cfg.Security.RateLimiterPrefix,
		cfg.Security.SignInRateLimit,
		cfg.Security.SignInRateWindow,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sign-in rate limiter: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, sessions, signInLimiter, ids, auditService, cfg.Security.BcryptCost)
	recordUsecase := usecase.NewRecordUsecase(log, userRepo, patientProfileRepo, recordRepo, ids, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, userRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, userRepo, patientProfileRepo, doctorProfileRepo, recordRepo)
	analysisUsecase := usecase.NewAnalysisUsecase(analysisClient)
	adminUsecase := usecase.NewAdminUsecase(log, userRepo, sessions, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:          handler.NewAuthHandler(authUsecase, customValidator),
		Patient:       handler.NewPatientHandler(patientUsecase),
		MedicalRecord: handler.NewMedicalRecordHandler(recordUsecase, customValidator),
		Dashboard:     handler.NewDashboardHandler(dashboardUsecase),
		Analysis:      handler.NewAnalysisHandler(analysisUsecase, customValidator),
		Admin:         handler.NewAdminHandler(adminUsecase),
		AuditLog:      handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)

	// Initialize router
	router := deliveryHttp.NewRouter(log, cfg.App.RequestTimeout, cfg.App.TrustProxy, handlers, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.App.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown completes
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		_ = app.RedisClient.Close()
	}
}
