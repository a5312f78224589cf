package repository

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
)

// StateRepository определяет методы для работы со штатами
type StateRepository interface {
	SearchByName(ctx context.Context, query string) ([]domain.State, error)

	ListByCountryID(ctx context.Context, countryID int64, page domain.Page) ([]domain.State, error)

	// CountByCountryID считает штаты страны
	CountByCountryID(ctx context.Context, countryID int64) (int64, error)

	InsertMany(ctx context.Context, states []domain.State) error
}
