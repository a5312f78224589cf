package repository

import (
	"context"

	"github.com/geo-directory-service/internal/domain"
)

// CountryRepository определяет методы для работы со странами
type CountryRepository interface {
	// List возвращает страны в порядке вставки
	List(ctx context.Context, page domain.Page) ([]domain.Country, error)

	// SearchByName ищет страны, имя которых содержит подстроку (с учётом регистра)
	SearchByName(ctx context.Context, query string) ([]domain.Country, error)

	// GetByName возвращает первую страну с точным совпадением имени, nil если нет
	GetByName(ctx context.Context, name string) (*domain.Country, error)

	// InsertMany вставляет страны пачками
	InsertMany(ctx context.Context, countries []domain.Country) error
}
