// @title UX Metrics Service API
// @version 1.0
// @description Stores daily UX analytics rows and serves range queries, weekly/monthly aggregates, period comparisons, trend analysis and frustration alerts.
// @BasePath /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ux-metrics-service/internal/config"
	"ux-metrics-service/internal/database"
	"ux-metrics-service/internal/logging"

	ingestHttp "ux-metrics-service/internal/ingest/adapters/http/fiber"
	ingestRepo "ux-metrics-service/internal/ingest/adapters/sqlstore"
	ingestUsecase "ux-metrics-service/internal/ingest/core/usecase"

	metricsHttp "ux-metrics-service/internal/metrics/adapters/http/fiber"
	metricsNotify "ux-metrics-service/internal/metrics/adapters/resend"
	metricsRepo "ux-metrics-service/internal/metrics/adapters/sqlstore"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
	metricsUsecase "ux-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "ux-metrics-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// DB connection (+ migrations)
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Adapter-level DB wrappers
	ingestDB := ingestRepo.NewSQLDB(db)
	metricsDB := metricsRepo.NewSQLDB(db)

	// Repositories
	dailyRepository := ingestRepo.NewDailyMetricRepository(ingestDB)
	metricsReader := metricsRepo.NewMetricsReader(metricsDB)
	aggregateRepository := metricsRepo.NewAggregateRepository(metricsDB)

	var notifier ports.AlertNotifierPort = metricsNotify.NewLogNotifier(logger)
	if cfg.Alerts.Enabled {
		notifier = metricsNotify.NewNotifier(cfg.Alerts.ResendAPIKey, cfg.Alerts.From, cfg.Alerts.To, logger)
	}

	// Usecases
	defaults := metricsUsecase.Defaults{
		MetricName: cfg.Defaults.MetricName,
		Scope:      domain.Scope(cfg.Defaults.Scope),
	}
	storeUC := ingestUsecase.NewStoreDailyMetricUseCase(dailyRepository)
	queryUC := metricsUsecase.NewQueryMetricsUseCase(metricsReader, defaults)
	aggregateUC := metricsUsecase.NewAggregateMetricsUseCase(metricsReader, aggregateRepository, defaults, logger)
	compareUC := metricsUsecase.NewComparePeriodsUseCase(metricsReader, defaults)
	trendUC := metricsUsecase.NewAnalyzeTrendUseCase(metricsReader, defaults)
	alertUC := metricsUsecase.NewFrustrationAlertUseCase(metricsReader, notifier, defaults, cfg.Alerts.Threshold, logger)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	ingestHttp.NewIngestHandler(storeUC).Register(app)
	metricsHttp.NewMetricsHandler(queryUC, aggregateUC, compareUC, trendUC, alertUC).Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := cfg.Server.Addr()
	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("addr", addr),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("alerts_enabled", cfg.Alerts.Enabled))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}
