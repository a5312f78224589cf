package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/geo-directory-service/internal/domain/repository"
	"github.com/geo-directory-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCountryRepositoryForTest creates a country repository with test database and logger
func NewCountryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CountryRepository {
	return postgres.NewCountryRepository(NewDBForTest(db, logger))
}

// NewStateRepositoryForTest creates a state repository with test database and logger
func NewStateRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StateRepository {
	return postgres.NewStateRepository(NewDBForTest(db, logger))
}

// NewCityRepositoryForTest creates a city repository with test database and logger
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CityRepository {
	return postgres.NewCityRepository(NewDBForTest(db, logger))
}
