package postgres

import (
	"context"
	"fmt"
)

// row_id задаёт стабильный порядок вставки для пагинации; id приходит из данных и не уникален
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		row_id BIGSERIAL PRIMARY KEY,
		id     BIGINT NOT NULL DEFAULT 0,
		name   TEXT   NOT NULL DEFAULT '',
		code   TEXT   NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_countries_name ON countries (name)`,

	`CREATE TABLE IF NOT EXISTS states (
		row_id       BIGSERIAL PRIMARY KEY,
		id           BIGINT NOT NULL DEFAULT 0,
		name         TEXT   NOT NULL DEFAULT '',
		country_id   BIGINT NOT NULL DEFAULT 0,
		country_code TEXT   NOT NULL DEFAULT '',
		country_name TEXT   NOT NULL DEFAULT '',
		state_code   TEXT   NOT NULL DEFAULT '',
		type         TEXT   NOT NULL DEFAULT '',
		latitude     TEXT   NOT NULL DEFAULT '',
		longitude    TEXT   NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_states_country_id ON states (country_id)`,

	`CREATE TABLE IF NOT EXISTS cities (
		row_id       BIGSERIAL PRIMARY KEY,
		id           BIGINT NOT NULL DEFAULT 0,
		name         TEXT   NOT NULL DEFAULT '',
		state_id     BIGINT NOT NULL DEFAULT 0,
		state_code   TEXT   NOT NULL DEFAULT '',
		state_name   TEXT   NOT NULL DEFAULT '',
		country_id   BIGINT NOT NULL DEFAULT 0,
		country_code TEXT   NOT NULL DEFAULT '',
		country_name TEXT   NOT NULL DEFAULT '',
		latitude     TEXT   NOT NULL DEFAULT '',
		longitude    TEXT   NOT NULL DEFAULT '',
		wiki_id      TEXT   NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cities_state_id ON cities (state_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cities_country_id ON cities (country_id)`,
}

// EnsureSchema создаёт таблицы, если их ещё нет. Повторный вызов безопасен
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	db.logger.Info("Database schema ensured")
	return nil
}
