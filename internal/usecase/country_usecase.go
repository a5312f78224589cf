package usecase

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CountryUseCase обрабатывает бизнес-логику для стран
type CountryUseCase struct {
	countryRepo repository.CountryRepository
	stateRepo   repository.StateRepository
	cityRepo    repository.CityRepository
	logger      *zap.Logger
}

// NewCountryUseCase создает новый экземпляр CountryUseCase
func NewCountryUseCase(
	countryRepo repository.CountryRepository,
	stateRepo repository.StateRepository,
	cityRepo repository.CityRepository,
	logger *zap.Logger,
) *CountryUseCase {
	return &CountryUseCase{
		countryRepo: countryRepo,
		stateRepo:   stateRepo,
		cityRepo:    cityRepo,
		logger:      logger,
	}
}

// List возвращает страницу стран
func (uc *CountryUseCase) List(ctx context.Context, req dto.PageRequest) ([]domain.Country, error) {
	countries, err := uc.countryRepo.List(ctx, domain.NewPage(req.Page, req.Limit))
	if err != nil {
		uc.logger.Error("Failed to list countries",
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return countries, nil
}

// Search ищет страны по подстроке имени
func (uc *CountryUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]domain.Country, error) {
	countries, err := uc.countryRepo.SearchByName(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Failed to search countries", zap.String("query", req.Query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return countries, nil
}

// GetSummary возвращает код страны и количество её штатов и городов
func (uc *CountryUseCase) GetSummary(ctx context.Context, req dto.CountrySummaryRequest) (*dto.CountrySummaryResponse, error) {
	country, err := uc.countryRepo.GetByName(ctx, req.Name)
	if err != nil {
		uc.logger.Error("Failed to get country by name", zap.String("name", req.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if country == nil {
		return nil, errors.ErrCountryNotFound
	}

	totalStates, err := uc.stateRepo.CountByCountryID(ctx, country.ID)
	if err != nil {
		uc.logger.Error("Failed to count states", zap.Int64("country_id", country.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	totalCities, err := uc.cityRepo.CountByCountryID(ctx, country.ID)
	if err != nil {
		uc.logger.Error("Failed to count cities", zap.Int64("country_id", country.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.CountrySummaryResponse{
		Name:        country.Name,
		Code:        country.Code,
		TotalStates: totalStates,
		TotalCities: totalCities,
	}, nil
}
