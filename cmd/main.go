package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/campus_cleanliness_system/internal/config"
	"github.com/shenikar/campus_cleanliness_system/internal/detector"
	v1 "github.com/shenikar/campus_cleanliness_system/internal/handler/http/v1"
	"github.com/shenikar/campus_cleanliness_system/internal/repository"
	"github.com/shenikar/campus_cleanliness_system/internal/service"
	"github.com/shenikar/campus_cleanliness_system/internal/storage"
	"github.com/shenikar/campus_cleanliness_system/internal/webhook"
	"github.com/shenikar/campus_cleanliness_system/pkg/logger"
	"github.com/shenikar/campus_cleanliness_system/pkg/mongodb"
	redisclient "github.com/shenikar/campus_cleanliness_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/campus_cleanliness_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Campus Cleanliness Monitoring API
// @version 1.0
// @description HTTP backend for campus cleanliness incident reporting and dashboard analytics.
// @host localhost:8080
// @BasePath /
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

	// Единственная проба соединения с MongoDB: при неудаче процесс живет
	// в деградированном режиме до перезапуска, без повторных попыток
	var incidentRepo service.IncidentRepository
	mongoClient, err := mongodb.NewMongoClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to connect to MongoDB, running in degraded mode")
		incidentRepo = repository.NewUnavailableRepository()
	} else {
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}()
		log.Info("Successfully connected to MongoDB")
		incidentRepo = repository.NewMongoIncidentRepository(mongoClient, cfg.MongoDBName, cfg.MongoCollection)
	}

	// Redis опционален: без него кеш отчетов и очередь алертов отключены
	var reportCache service.ReportCache = repository.NewNoopReportCache()
	var alertPublisher webhook.AlertPublisher = webhook.NewNoopAlertPublisher()
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Error("Failed to connect to Redis, cache and alert queue disabled")
		} else {
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")

			reportCache = repository.NewRedisReportCache(redisClient, cfg.ReportCacheTTL)
			alertPublisher = webhook.NewRedisAlertPublisher(redisClient)

			// Инициализация и запуск воркера алертов
			alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
			alertWorker.Start(ctx)
		}
	}

	// Хранилище снимков
	evidenceStore, err := storage.NewEvidenceStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize evidence storage: %v", err)
	}

	// Инициализация сервисов
	detectionService := service.NewDetectionService(
		incidentRepo,
		reportCache,
		evidenceStore,
		detector.NewSimulatedDetector(),
		alertPublisher,
		log,
	)
	reportService := service.NewReportService(incidentRepo, reportCache, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(detectionService, reportService, log, cfg, incidentRepo.Available())

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware())
	handler.RegisterRoutes(router)

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
