package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	assert.Equal(t, "migrations", GetMigrationsPath())

	t.Setenv("MIGRATIONS_PATH", "deploy/sql")
	assert.Equal(t, "deploy/sql", GetMigrationsPath())
}

func TestMigrate_Errors(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("nil database", func(t *testing.T) {
		err := Migrate(nil, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "/non/existent/path")
		err := Migrate(openSQLite(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migrations directory does not exist")
	})

	t.Run("not a postgres connection", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", t.TempDir())
		err := Migrate(openSQLite(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create postgres driver")
	})
}
