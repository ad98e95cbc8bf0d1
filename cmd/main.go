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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/feeds"
	"github.com/shenikar/disaster_response_system/internal/geo"
	v1 "github.com/shenikar/disaster_response_system/internal/handler/http/v1"
	"github.com/shenikar/disaster_response_system/internal/identity"
	"github.com/shenikar/disaster_response_system/internal/notifier"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/shenikar/disaster_response_system/internal/repository"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/shenikar/disaster_response_system/pkg/logger"
	"github.com/shenikar/disaster_response_system/pkg/postgres"
	redisclient "github.com/shenikar/disaster_response_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/disaster_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Response System API
// @version 1.0
// @description This is a Disaster Response System API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey UserIDAuth
// @in header
// @name X-User-ID
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

	// Каталог для загружаемых изображений
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Метрики и часы
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Инициализация издателя событий и websocket-хаба
	publisher := notifier.NewRedisPublisher(redisClient, metrics)
	hub := notifier.NewHub(redisClient, log)
	hub.Start(ctx)

	// Инициализация репозиториев
	cache := repository.NewCacheRepository(redisClient)
	disasterRepo := repository.NewDisasterRepository(dbpool)
	resourceRepo := repository.NewResourceRepository(dbpool)

	// Инициализация внешних клиентов
	gemini := geo.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiTimeout, metrics, log)
	mapbox := geo.NewMapboxClient(cfg.MapboxAPIKey, cfg.MapboxBaseURL, cfg.MapboxTimeout, metrics, log)
	rssParser := feeds.NewRSSParser(cfg.OfficialFeedURL, cfg.OfficialFeedTimeout)

	// Инициализация сервисов
	enricher := service.NewEnrichmentService(cache, gemini, mapbox, cfg.GeocodeCacheTTL, metrics, log)
	disasterService := service.NewDisasterService(disasterRepo, resourceRepo, enricher, gemini, publisher, log, clock)
	feedService := service.NewFeedService(cache, disasterRepo, rssParser, publisher, cfg.SocialCacheTTL, cfg.FeedCacheTTL, metrics, log, clock)

	// Инициализация провайдера идентичности и хэндлеров
	provider := identity.NewStaticProvider()
	handler := v1.NewHandler(disasterService, feedService, enricher, provider, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.MetricsMiddleware(metrics))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Статика загруженных изображений и метрики
	router.Static("/verify-images", cfg.UploadDir)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Disaster Response API is live!")
	})

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
