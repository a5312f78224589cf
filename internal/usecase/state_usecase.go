package usecase

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StateUseCase обрабатывает бизнес-логику для штатов
type StateUseCase struct {
	stateRepo repository.StateRepository
	logger    *zap.Logger
}

// NewStateUseCase создает новый экземпляр StateUseCase
func NewStateUseCase(stateRepo repository.StateRepository, logger *zap.Logger) *StateUseCase {
	return &StateUseCase{
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// Search ищет штаты по подстроке имени
func (uc *StateUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]domain.State, error) {
	states, err := uc.stateRepo.SearchByName(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Failed to search states", zap.String("query", req.Query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return states, nil
}

// ListByCountry возвращает страницу штатов страны
func (uc *StateUseCase) ListByCountry(ctx context.Context, req dto.ListStatesByCountryRequest) ([]domain.State, error) {
	states, err := uc.stateRepo.ListByCountryID(ctx, req.CountryID, domain.NewPage(req.Page, req.Limit))
	if err != nil {
		uc.logger.Error("Failed to list states by country",
			zap.Int64("country_id", req.CountryID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return states, nil
}
