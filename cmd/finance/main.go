package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/internal/pkg/config"
	"github.com/bshiribaiev/hackfest/internal/pkg/database"
	"github.com/bshiribaiev/hackfest/internal/pkg/health"
	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/middleware"
	natspkg "github.com/bshiribaiev/hackfest/internal/pkg/nats"
	"github.com/bshiribaiev/hackfest/internal/pkg/server"
	"github.com/bshiribaiev/hackfest/services/finance/gateway"
	"github.com/bshiribaiev/hackfest/services/finance/handler"
	httpHandler "github.com/bshiribaiev/hackfest/services/finance/handler/http"
	"github.com/bshiribaiev/hackfest/services/finance/repository"
	"github.com/bshiribaiev/hackfest/services/finance/usecase"
)

const appName = "finance-service"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/finance.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Components register their closers here; they run once the HTTP server
	// has drained.
	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Initialize NATS producer
	producer, err := natspkg.NewProducer(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Close()
		return nil
	})

	// Initialize repositories
	studentRepo := repository.NewStudentRepo(postgresClient.GetDB())
	transactionRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB(), redisClient)
	walletRepo := repository.NewWalletRepo(postgresClient.GetDB())
	leaderboardRepo := repository.NewLeaderboardRepo(postgresClient.GetDB())
	budgetRepo := repository.NewBudgetRepo(postgresClient.GetDB())

	// Initialize gateway
	financeGW := gateway.NewFinanceGW(producer)

	// Initialize use case
	financeUC := usecase.NewFinanceUC(
		configs,
		studentRepo,
		transactionRepo,
		walletRepo,
		leaderboardRepo,
		budgetRepo,
		financeGW,
	)

	// Initialize HTTP handlers
	studentHandler := httpHandler.NewStudentHandler(financeUC)
	transactionHandler := httpHandler.NewTransactionHandler(financeUC)
	budgetHandler := httpHandler.NewBudgetHandler(financeUC)
	adviceHandler := httpHandler.NewAdviceHandler(financeUC)

	h := handler.NewHandler(studentHandler, transactionHandler, budgetHandler, adviceHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
	)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped unexpectedly",
			logger.String("app", appName),
			logger.Err(err),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown incomplete", logger.Err(err))
	}
}
