package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/gamestore-webhook/internal/pkg/config"
	"github.com/piresc/gamestore-webhook/internal/pkg/database"
	"github.com/piresc/gamestore-webhook/internal/pkg/health"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/metrics"
	"github.com/piresc/gamestore-webhook/internal/pkg/middleware"
	nrpkg "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/server"
	"github.com/piresc/gamestore-webhook/services/webhook/gateway"
	"github.com/piresc/gamestore-webhook/services/webhook/handler"
	"github.com/piresc/gamestore-webhook/services/webhook/repository"
	"github.com/piresc/gamestore-webhook/services/webhook/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := "config/webhook.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
		defer nrApp.Shutdown(10 * time.Second)
	}

	var logApp = nrApp
	if !configs.NewRelic.ForwardLogs {
		logApp = nil
	}
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, logApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("auth_code_store", configs.AuthCode.Store),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	checkers := map[string]health.Checker{}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	checkers["postgres"] = postgresClient

	// Redis only holds auth codes, so it is only dialed when they live server-side
	var redisClient *database.RedisClient
	if configs.AuthCode.ServerSide() {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		checkers["redis"] = health.CheckerFunc(func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		})
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serverMetrics := metrics.NewServerMetrics("webhook", registry)

	// Initialize layers
	webhookRepo := repository.NewWebhookRepository(configs, postgresClient.GetDB(), redisClient)
	webhookGW := gateway.NewWebhookGW(configs.SMTP)
	webhookUC := usecase.NewWebhookUC(webhookRepo, webhookGW, configs)
	h := handler.NewHandler(webhookUC, serverMetrics)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, checkers)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Warn("Components did not shut down cleanly", logger.Err(err))
	}
}
