package postgres

import (
	"context"
	"fmt"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

const cityColumns = `id, name, state_id, state_code, state_name, country_id, country_code, country_name, latitude, longitude, wiki_id`

type cityRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCityRepository создает новый экземпляр city repository
func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *cityRepository) SearchByName(ctx context.Context, query string) ([]domain.City, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	sqlQuery := `SELECT ` + cityColumns + `
		FROM cities
		WHERE strpos(name, $1) > 0
		ORDER BY row_id
	`

	cities := make([]domain.City, 0)
	if err := r.db.SelectContext(ctx, &cities, sqlQuery, query); err != nil {
		return nil, fmt.Errorf("search cities: %w", err)
	}

	r.logger.Debug("Cities search completed",
		zap.String("query", query),
		zap.Int("found", len(cities)),
	)

	return cities, nil
}

func (r *cityRepository) ListByStateID(ctx context.Context, stateID int64, page domain.Page) ([]domain.City, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cityColumns + `
		FROM cities
		WHERE state_id = $1
		ORDER BY row_id
		LIMIT $2 OFFSET $3
	`

	cities := make([]domain.City, 0, page.Limit)
	if err := r.db.SelectContext(ctx, &cities, query, stateID, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list cities by state %d: %w", stateID, err)
	}

	return cities, nil
}

func (r *cityRepository) CountByCountryID(ctx context.Context, countryID int64) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM cities WHERE country_id = $1`, countryID); err != nil {
		return 0, fmt.Errorf("count cities by country %d: %w", countryID, err)
	}

	return total, nil
}

func (r *cityRepository) InsertMany(ctx context.Context, cities []domain.City) error {
	query := `
		INSERT INTO cities (` + cityColumns + `)
		VALUES (:id, :name, :state_id, :state_code, :state_name, :country_id, :country_code, :country_name, :latitude, :longitude, :wiki_id)
	`

	if err := insertInBatches(ctx, r.db, query, cities); err != nil {
		return fmt.Errorf("insert cities: %w", err)
	}

	r.logger.Info("Cities inserted", zap.Int("count", len(cities)))
	return nil
}
