package contextkeys

import (
	"context"

	"gorm.io/gorm"
)

// Custom key type to avoid context collisions
type contextKey string

// DBContextKey stores the *gorm.DB handle (pool or transaction) in context
const DBContextKey = contextKey("db")

// WithDB returns a context carrying the given database handle.
func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, DBContextKey, db)
}

// DB extracts the handle placed by WithDB, if any.
func DB(ctx context.Context) (*gorm.DB, bool) {
	db, ok := ctx.Value(DBContextKey).(*gorm.DB)
	return db, ok && db != nil
}
