package postgres

import (
	"context"
	"fmt"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

const stateColumns = `id, name, country_id, country_code, country_name, state_code, type, latitude, longitude`

type stateRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStateRepository создает новый экземпляр state repository
func NewStateRepository(db *DB) repository.StateRepository {
	return &stateRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *stateRepository) SearchByName(ctx context.Context, query string) ([]domain.State, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	sqlQuery := `SELECT ` + stateColumns + `
		FROM states
		WHERE strpos(name, $1) > 0
		ORDER BY row_id
	`

	states := make([]domain.State, 0)
	if err := r.db.SelectContext(ctx, &states, sqlQuery, query); err != nil {
		return nil, fmt.Errorf("search states: %w", err)
	}

	r.logger.Debug("States search completed",
		zap.String("query", query),
		zap.Int("found", len(states)),
	)

	return states, nil
}

func (r *stateRepository) ListByCountryID(ctx context.Context, countryID int64, page domain.Page) ([]domain.State, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + stateColumns + `
		FROM states
		WHERE country_id = $1
		ORDER BY row_id
		LIMIT $2 OFFSET $3
	`

	states := make([]domain.State, 0, page.Limit)
	if err := r.db.SelectContext(ctx, &states, query, countryID, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list states by country %d: %w", countryID, err)
	}

	return states, nil
}

func (r *stateRepository) CountByCountryID(ctx context.Context, countryID int64) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM states WHERE country_id = $1`, countryID); err != nil {
		return 0, fmt.Errorf("count states by country %d: %w", countryID, err)
	}

	return total, nil
}

func (r *stateRepository) InsertMany(ctx context.Context, states []domain.State) error {
	query := `
		INSERT INTO states (` + stateColumns + `)
		VALUES (:id, :name, :country_id, :country_code, :country_name, :state_code, :type, :latitude, :longitude)
	`

	if err := insertInBatches(ctx, r.db, query, states); err != nil {
		return fmt.Errorf("insert states: %w", err)
	}

	r.logger.Info("States inserted", zap.Int("count", len(states)))
	return nil
}
