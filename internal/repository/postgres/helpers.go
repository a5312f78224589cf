package postgres

import (
	"context"
	"fmt"
)

// insertInBatches выполняет named INSERT ... VALUES пачками по batchSize строк
func insertInBatches[T any](ctx context.Context, db *DB, query string, items []T) error {
	size := db.batchSize()
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		if _, err := db.NamedExecContext(ctx, query, items[start:end]); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end-1, err)
		}
	}
	return nil
}
