package repositories

import (
	"context"

	"staynest/pkg/contextkeys"

	"gorm.io/gorm"
)

// conn resolves the database handle for a single call. A handle carried
// in the context, placed there by the request middleware or a test
// transaction, takes precedence over the repository's own pool.
func conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := contextkeys.DB(ctx); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}
