package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

type countryRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCountryRepository создает новый экземпляр country repository
func NewCountryRepository(db *DB) repository.CountryRepository {
	return &countryRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *countryRepository) List(ctx context.Context, page domain.Page) ([]domain.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, code
		FROM countries
		ORDER BY row_id
		LIMIT $1 OFFSET $2
	`

	countries := make([]domain.Country, 0, page.Limit)
	if err := r.db.SelectContext(ctx, &countries, query, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	return countries, nil
}

// SearchByName - регистрозависимый поиск по подстроке; strpos не интерпретирует шаблоны
func (r *countryRepository) SearchByName(ctx context.Context, query string) ([]domain.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	sqlQuery := `
		SELECT id, name, code
		FROM countries
		WHERE strpos(name, $1) > 0
		ORDER BY row_id
	`

	countries := make([]domain.Country, 0)
	if err := r.db.SelectContext(ctx, &countries, sqlQuery, query); err != nil {
		return nil, fmt.Errorf("search countries: %w", err)
	}

	r.logger.Debug("Countries search completed",
		zap.String("query", query),
		zap.Int("found", len(countries)),
	)

	return countries, nil
}

func (r *countryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, code
		FROM countries
		WHERE name = $1
		ORDER BY row_id
		LIMIT 1
	`

	var country domain.Country
	err := r.db.GetContext(ctx, &country, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get country by name: %w", err)
	}

	return &country, nil
}

func (r *countryRepository) InsertMany(ctx context.Context, countries []domain.Country) error {
	query := `INSERT INTO countries (id, name, code) VALUES (:id, :name, :code)`

	if err := insertInBatches(ctx, r.db, query, countries); err != nil {
		return fmt.Errorf("insert countries: %w", err)
	}

	r.logger.Info("Countries inserted", zap.Int("count", len(countries)))
	return nil
}
