package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/geo-directory-service/internal/config"
	"go.uber.org/zap"
)

const defaultInsertBatchSize = 1000

type DB struct {
	*sqlx.DB
	logger          *zap.Logger
	queryTimeout    time.Duration
	insertBatchSize int
}

func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect("pgx", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
	)

	return &DB{
		DB:              db,
		logger:          logger,
		queryTimeout:    cfg.QueryTimeout,
		insertBatchSize: cfg.InsertBatchSize,
	}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// withTimeout ограничивает запрос DB_QUERY_TIMEOUT; нулевой таймаут - без ограничения
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

func (db *DB) batchSize() int {
	switch {
	case db.insertBatchSize <= 0:
		return defaultInsertBatchSize
	case db.insertBatchSize > config.MaxInsertBatchSize:
		return config.MaxInsertBatchSize
	default:
		return db.insertBatchSize
	}
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:              sqlxDB,
		logger:          logger,
		queryTimeout:    10 * time.Second,
		insertBatchSize: defaultInsertBatchSize,
	}
}
