package main

import (
	"fmt"
	"os"

	"github.com/mindwell/backend-go/internal/api"
	"github.com/mindwell/backend-go/internal/config"
	"github.com/mindwell/backend-go/internal/database"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
	"github.com/mindwell/backend-go/internal/handler"
	"github.com/mindwell/backend-go/internal/logger"
	"github.com/mindwell/backend-go/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [MindWell] Starting API server...",
		"environment", cfg.AppEnv,
	)

	// Tokens are unverifiable without a secret; refuse to start
	if cfg.JWTSecret == "" {
		appLogger.Error("❌ JWT_SECRET is not configured")
		os.Exit(1)
	}

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	counselorRepo := repository.NewCounselorRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	reportRepo := repository.NewReportRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// 5. Initialize Redis (public-list cache)
	redisClient, err := database.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis for list caching", "error", err)
		appLogger.Info("💡 Counselor/resource lists will be served from Postgres only")
		// Continue without Redis - listings still work from Postgres
	}
	defer func() {
		if redisClient != nil {
			redisClient.Close()
		}
	}()

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	moodService := service.NewMoodService(moodRepo, appLogger)
	counselorService := service.NewCounselorService(counselorRepo, redisClient, appLogger)
	resourceService := service.NewResourceService(resourceRepo, redisClient, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// 7. Login throttling
	loginLimiter, err := middleware.NewLoginLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op login limiter", "error", err)
		loginLimiter = middleware.NewNoOpLoginLimiter(appLogger)
	}
	defer loginLimiter.Close()

	// 8. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, loginLimiter, appLogger)
	journalHandler := handler.NewJournalHandler(journalRepo, appLogger)
	moodHandler := handler.NewMoodHandler(moodService, appLogger)
	appointmentHandler := handler.NewAppointmentHandler(appointmentRepo, appLogger)
	counselorHandler := handler.NewCounselorHandler(counselorService, appLogger)
	resourceHandler := handler.NewResourceHandler(resourceService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	intakeHandler := handler.NewIntakeHandler(feedbackRepo, reportRepo, contactRepo, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo, appLogger)

	r := api.SetupRouter(
		authHandler,
		journalHandler,
		moodHandler,
		appointmentHandler,
		counselorHandler,
		resourceHandler,
		userHandler,
		intakeHandler,
		authMiddleware,
		appLogger,
	)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [MindWell] HTTP Server running...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
