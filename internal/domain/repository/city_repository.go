package repository

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
)

// CityRepository определяет методы для работы с городами
type CityRepository interface {
	SearchByName(ctx context.Context, query string) ([]domain.City, error)

	ListByStateID(ctx context.Context, stateID int64, page domain.Page) ([]domain.City, error)

	// CountByCountryID считает города страны по денормализованному countryId
	CountByCountryID(ctx context.Context, countryID int64) (int64, error)

	InsertMany(ctx context.Context, cities []domain.City) error
}
