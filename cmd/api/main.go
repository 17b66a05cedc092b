package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "instant_offer/docs"
	"instant_offer/internal/adapter/http/routes"
	"instant_offer/internal/adapter/persistence/repository"
	"instant_offer/internal/infrastructure/config"
	"instant_offer/internal/infrastructure/database"
	"instant_offer/internal/infrastructure/locking"
	"instant_offer/internal/infrastructure/logger"
	"instant_offer/internal/infrastructure/metrics"
	"instant_offer/internal/infrastructure/notification"
	"instant_offer/internal/infrastructure/vehicledata"
	"instant_offer/internal/usecase"
	"instant_offer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           Instant Offer API
// @version         1.0
// @description     Vehicle cash-offer quotes: intake, pricing and the quote lifecycle.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Operator API key.

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "instant-offer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newQuoteRepository(ctx, cfg)
	if err != nil {
		return err
	}
	locker, err := newQuoteLocker(ctx, cfg, log)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	dispatcher := notification.NewDispatcher(notification.NewLogSender(log), notification.Options{
		QueueSize:   cfg.Notification.QueueSize,
		Workers:     cfg.Notification.Workers,
		SendTimeout: cfg.Notification.SendTimeout,
		AdminEmail:  cfg.Notification.AdminEmail,
		OnFailure:   recorder.ObserveNotificationFailure,
	}, log)
	dispatcher.Start()

	vpic, err := vehicledata.NewClient(cfg.VehicleData.BaseURL, cfg.VehicleData.Timeout, log)
	if err != nil {
		return err
	}

	opts := []usecase.Option{
		usecase.WithClock(cfg.Clock()),
		usecase.WithValidity(cfg.QuoteValidity()),
		usecase.WithRecorder(recorder),
	}

	deps := routes.Dependencies{
		Quotes:             usecase.NewQuoteUseCase(repo, dispatcher, log, opts...),
		Actions:            usecase.NewQuoteActionUseCase(repo, locker, dispatcher, log, opts...),
		Condition:          usecase.NewConditionUseCase(log, opts...),
		Vehicles:           usecase.NewVehicleUseCase(vpic, log, opts...),
		Logger:             log,
		AllowedOrigins:     cfg.HTTP.AllowedOrigins,
		AdminAPIKey:        cfg.HTTP.AdminAPIKey,
		RateLimitPerMinute: cfg.HTTP.RateLimitRPM,
		RateLimitBurst:     cfg.HTTP.RateLimitBurst,
	}
	if cfg.MetricsEnabled {
		deps.Gatherer = registry
	}
	if cfg.HTTP.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is empty, admin routes will reject every request")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageDriver),
			zap.String("locker", cfg.LockDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("notification queue not drained", zap.Error(err))
	}
	return nil
}

func newQuoteRepository(ctx context.Context, cfg *config.Configuration) (interfaces.IQuoteRepository, error) {
	if cfg.StorageDriver == config.StorageMemory {
		return repository.NewQuoteMemoryRepository(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	return repository.NewQuoteDynamoRepository(ddb, cfg.AWS.QuotesTable), nil
}

func newQuoteLocker(ctx context.Context, cfg *config.Configuration, log *zap.Logger) (interfaces.IQuoteLocker, error) {
	if cfg.LockDriver == config.LockerMemory {
		return locking.NewMemoryLocker(), nil
	}
	client, err := locking.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	return locking.NewRedisLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockWait, log), nil
}
