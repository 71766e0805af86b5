package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/helper_network/internal/broadcast"
	"github.com/shenikar/helper_network/internal/config"
	v1 "github.com/shenikar/helper_network/internal/handler/http/v1"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/outbound"
	"github.com/shenikar/helper_network/internal/registry"
	"github.com/shenikar/helper_network/internal/repository"
	"github.com/shenikar/helper_network/internal/service"
	"github.com/shenikar/helper_network/internal/syncqueue"
	"github.com/shenikar/helper_network/pkg/logger"
	"github.com/shenikar/helper_network/pkg/postgres"
	redisclient "github.com/shenikar/helper_network/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/helper_network/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Helper Network API
// @version 1.0
// @description This is a Helper Network API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// registerSyncHandlers привязывает типы операций очереди к внешнему диспетчеру
func registerSyncHandlers(queue *syncqueue.Queue, dispatcher outbound.Dispatcher) {
	deliver := func(ctx context.Context, op models.SyncOperation) error {
		return dispatcher.Deliver(ctx, op.Payload)
	}
	queue.RegisterHandler(models.SyncTypeEmergencyAlert, deliver)
	queue.RegisterHandler(models.SyncTypeMedicalInfoUpdate, deliver)
	queue.RegisterHandler(models.SyncTypeContactUpdate, deliver)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Шина событий между экземплярами сервиса
	bus := broadcast.NewBus(redisClient, log, cfg.BroadcastPollInterval)
	bus.Start(ctx)
	defer bus.Stop()

	// Общий реестр хелперов и запросов помощи
	store := registry.NewStore(redisClient, log, bus)

	// Внешний диспетчер и очередь синхронизации
	dispatcher := outbound.NewWebhookDispatcher(cfg, log)
	queue := syncqueue.NewQueue(redisClient, log)
	registerSyncHandlers(queue, dispatcher)
	queue.SetOnline(ctx, true)

	// Инициализация репозиториев
	zoneRepo := repository.NewZoneRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)

	// Инициализация сервисов
	matcherService := service.NewMatcherService(store, bus, log, cfg)
	geofenceService := service.NewGeofenceService(zoneRepo, log, cfg)
	alertService := service.NewAlertService(dispatcher, queue, log)
	profileService := service.NewProfileService(profileRepo, dispatcher, queue, log)
	notifier := service.NewAlertNotifier(cfg.AlertCooldown, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(matcherService, geofenceService, alertService, profileService, notifier, queue, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
