package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/geo-directory-service/internal/config"
	"github.com/geo-directory-service/internal/infrastructure/dataset"
	"github.com/geo-directory-service/internal/pkg/logger"
	"github.com/geo-directory-service/internal/repository/postgres"
	"github.com/geo-directory-service/internal/usecase"
	"go.uber.org/zap"
)

// Разовая загрузка seed данных без запуска HTTP сервера
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	statesFile := flag.String("states", cfg.Seed.StatesFile, "path to states JSON file")
	citiesFile := flag.String("cities", cfg.Seed.CitiesFile, "path to cities JSON file")
	flag.Parse()

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Error("Failed to ensure database schema", zap.Error(err))
		os.Exit(1)
	}

	importUC := usecase.NewImportUseCase(
		dataset.NewFileLoader(*statesFile, *citiesFile, log),
		postgres.NewCountryRepository(db),
		postgres.NewStateRepository(db),
		postgres.NewCityRepository(db),
		log,
	)

	if _, err := importUC.Import(ctx); err != nil {
		log.Error("Seed import failed", zap.Error(err))
		os.Exit(1)
	}
}
