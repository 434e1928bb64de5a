package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS site_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec("DROP TABLE IF EXISTS site_settings").Error)
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func TestRepository_UpsertInsertsThenReplaces(t *testing.T) {
	db := setupSettingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, "tagline", "first", now))
	require.NoError(t, repo.Upsert(ctx, "tagline", "second", now.Add(time.Minute)))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tagline", rows[0].Key)
	assert.Equal(t, "second", rows[0].Value)
}

func TestRepository_ListOrderedByKey(t *testing.T) {
	db := setupSettingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, "tagline", "t", now))
	require.NoError(t, repo.Upsert(ctx, "address", "a", now))
	require.NoError(t, repo.Upsert(ctx, "phone", "p", now))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "address", rows[0].Key)
	assert.Equal(t, "phone", rows[1].Key)
	assert.Equal(t, "tagline", rows[2].Key)
}
