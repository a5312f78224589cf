// Package mocks содержит testify моки репозиториев для тестов use case и handler слоёв.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/geo-directory-service/internal/domain"
)

// CountryRepository is a mock of repository.CountryRepository
type CountryRepository struct {
	mock.Mock
}

func (m *CountryRepository) List(ctx context.Context, page domain.Page) ([]domain.Country, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *CountryRepository) SearchByName(ctx context.Context, query string) ([]domain.Country, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *CountryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *CountryRepository) InsertMany(ctx context.Context, countries []domain.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

// StateRepository is a mock of repository.StateRepository
type StateRepository struct {
	mock.Mock
}

func (m *StateRepository) SearchByName(ctx context.Context, query string) ([]domain.State, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.State), args.Error(1)
}

func (m *StateRepository) ListByCountryID(ctx context.Context, countryID int64, page domain.Page) ([]domain.State, error) {
	args := m.Called(ctx, countryID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.State), args.Error(1)
}

func (m *StateRepository) CountByCountryID(ctx context.Context, countryID int64) (int64, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StateRepository) InsertMany(ctx context.Context, states []domain.State) error {
	args := m.Called(ctx, states)
	return args.Error(0)
}

// CityRepository is a mock of repository.CityRepository
type CityRepository struct {
	mock.Mock
}

func (m *CityRepository) SearchByName(ctx context.Context, query string) ([]domain.City, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *CityRepository) ListByStateID(ctx context.Context, stateID int64, page domain.Page) ([]domain.City, error) {
	args := m.Called(ctx, stateID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *CityRepository) CountByCountryID(ctx context.Context, countryID int64) (int64, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CityRepository) InsertMany(ctx context.Context, cities []domain.City) error {
	args := m.Called(ctx, cities)
	return args.Error(0)
}

// SeedSource is a mock of repository.SeedSource
type SeedSource struct {
	mock.Mock
}

func (m *SeedSource) LoadStates(ctx context.Context) ([]domain.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.State), args.Error(1)
}

func (m *SeedSource) LoadCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}
