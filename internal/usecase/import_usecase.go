package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ImportUseCase загружает seed данные: штаты, затем города, затем выведенные страны.
// Импорт не идемпотентен, повторный запуск дублирует записи. Общей транзакции нет:
// ошибка на поздних шагах оставляет уже вставленные данные.
type ImportUseCase struct {
	source      repository.SeedSource
	countryRepo repository.CountryRepository
	stateRepo   repository.StateRepository
	cityRepo    repository.CityRepository
	logger      *zap.Logger
}

// NewImportUseCase создает новый экземпляр ImportUseCase
func NewImportUseCase(
	source repository.SeedSource,
	countryRepo repository.CountryRepository,
	stateRepo repository.StateRepository,
	cityRepo repository.CityRepository,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		source:      source,
		countryRepo: countryRepo,
		stateRepo:   stateRepo,
		cityRepo:    cityRepo,
		logger:      logger,
	}
}

// Import читает оба файла до первой вставки, поэтому битый файл не оставляет частичных данных
func (uc *ImportUseCase) Import(ctx context.Context) (*domain.ImportResult, error) {
	start := time.Now()
	uc.logger.Info("Seed import started")

	states, err := uc.source.LoadStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}

	cities, err := uc.source.LoadCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}

	if err := uc.stateRepo.InsertMany(ctx, states); err != nil {
		return nil, fmt.Errorf("insert states: %w", err)
	}

	if err := uc.cityRepo.InsertMany(ctx, cities); err != nil {
		return nil, fmt.Errorf("insert cities: %w", err)
	}

	countries := domain.DeriveCountries(states)
	if err := uc.countryRepo.InsertMany(ctx, countries); err != nil {
		return nil, fmt.Errorf("insert countries: %w", err)
	}

	result := &domain.ImportResult{
		States:    len(states),
		Cities:    len(cities),
		Countries: len(countries),
		Duration:  time.Since(start),
	}

	uc.logger.Info("Data Imported",
		zap.Int("states", result.States),
		zap.Int("cities", result.Cities),
		zap.Int("countries", result.Countries),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}
