package usecase

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CityUseCase обрабатывает бизнес-логику для городов
type CityUseCase struct {
	cityRepo repository.CityRepository
	logger   *zap.Logger
}

// NewCityUseCase создает новый экземпляр CityUseCase
func NewCityUseCase(cityRepo repository.CityRepository, logger *zap.Logger) *CityUseCase {
	return &CityUseCase{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

// Search ищет города по подстроке имени
func (uc *CityUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]domain.City, error) {
	cities, err := uc.cityRepo.SearchByName(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Failed to search cities", zap.String("query", req.Query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cities, nil
}

// ListByState возвращает страницу городов штата
func (uc *CityUseCase) ListByState(ctx context.Context, req dto.ListCitiesByStateRequest) ([]domain.City, error) {
	cities, err := uc.cityRepo.ListByStateID(ctx, req.StateID, domain.NewPage(req.Page, req.Limit))
	if err != nil {
		uc.logger.Error("Failed to list cities by state",
			zap.Int64("state_id", req.StateID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return cities, nil
}
