package repositories

import (
	"context"
	"testing"

	"staynest/pkg/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newBareDB builds a handle the way gorm.Open leaves it, without a
// driver. DryRun marks it so the two handles are distinguishable.
func newBareDB(dryRun bool) *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{DryRun: dryRun}}
	db.Statement = &gorm.Statement{DB: db, Context: context.Background()}
	return db
}

func TestConnPrefersContextHandle(t *testing.T) {
	injected := newBareDB(true)
	fallback := newBareDB(false)

	ctx := contextkeys.WithDB(context.Background(), injected)
	got := conn(ctx, fallback)

	require.NotNil(t, got)
	assert.True(t, got.Config.DryRun, "context handle must win over the pool")
	assert.Equal(t, ctx, got.Statement.Context)
}

func TestConnFallsBackToPool(t *testing.T) {
	fallback := newBareDB(true)

	ctx := context.Background()
	got := conn(ctx, fallback)

	require.NotNil(t, got)
	assert.True(t, got.Config.DryRun)
	assert.Equal(t, ctx, got.Statement.Context)
}
