package repository

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
)

// SeedSource - источник исходных данных для импорта
type SeedSource interface {
	LoadStates(ctx context.Context) ([]domain.State, error)
	LoadCities(ctx context.Context) ([]domain.City, error)
}
