package main

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --outputTypes go

// @title Geo Directory API
// @version 1.0.0
// @description Справочник стран, регионов и городов: постраничные списки, поиск по названию и сводка по стране.
// @description
// @description Все маршруты ограничены по частоте запросов на клиентский IP.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/geo-directory-service/docs"
	"github.com/geo-directory-service/internal/config"
	httpDelivery "github.com/geo-directory-service/internal/delivery/http"
	"github.com/geo-directory-service/internal/delivery/http/handler"
	"github.com/geo-directory-service/internal/delivery/http/middleware"
	"github.com/geo-directory-service/internal/infrastructure/dataset"
	"github.com/geo-directory-service/internal/pkg/logger"
	"github.com/geo-directory-service/internal/repository/cache"
	"github.com/geo-directory-service/internal/repository/postgres"
	"github.com/geo-directory-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geo Directory Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.RedisEnabled()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Redis хранит счётчики rate limiter, без REDIS_HOST - память процесса
	var (
		redisClient    *cache.Redis
		limiterStorage fiber.Storage
	)
	health := httpDelivery.CompositeHealth{db}
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		limiterStorage = cache.NewLimiterStorage(redisClient, "")
		health = append(health, redisClient)
		log.Info("Rate limiter uses Redis storage")
	} else {
		log.Info("Rate limiter uses in-memory storage")
	}

	// 5. Schema
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureSchema(ctx); err != nil {
		cancel()
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}
	cancel()

	// 6. Initialize Repositories
	countryRepo := postgres.NewCountryRepository(db)
	stateRepo := postgres.NewStateRepository(db)
	cityRepo := postgres.NewCityRepository(db)

	log.Info("Repositories initialized")

	// 7. Seed import - сервер не принимает запросы, пока данные не загружены
	if cfg.Seed.OnStartup {
		source := dataset.NewFileLoader(cfg.Seed.StatesFile, cfg.Seed.CitiesFile, log)
		importUC := usecase.NewImportUseCase(source, countryRepo, stateRepo, cityRepo, log)

		if _, err := importUC.Import(context.Background()); err != nil {
			log.Fatal("Seed import failed", zap.Error(err))
		}
	} else {
		log.Info("Seed import skipped")
	}

	// 8. Initialize Use Cases
	countryUC := usecase.NewCountryUseCase(countryRepo, stateRepo, cityRepo, log)
	stateUC := usecase.NewStateUseCase(stateRepo, log)
	cityUC := usecase.NewCityUseCase(cityRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	countryHandler := handler.NewCountryHandler(countryUC, log)
	stateHandler := handler.NewStateHandler(stateUC, log)
	cityHandler := handler.NewCityHandler(cityUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		middleware.RateLimiter(cfg.RateLimit, limiterStorage, log),
		health,
		countryHandler,
		stateHandler,
		cityHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("rate_limit_max", cfg.RateLimit.Max),
		zap.Duration("rate_limit_window", cfg.RateLimit.Window),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
