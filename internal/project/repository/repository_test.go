package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/internal/status"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Project{}))
	return db
}

func newProject(code, manager string, st status.Status) *model.Project {
	return &model.Project{
		ProjectCode:     code,
		ProjectName:     "Project " + code,
		ManagerUserName: manager,
		ProjectStatus:   st,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	p := newProject("PRJ1", "mike", status.Open)
	p.StartDate = &start
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByCode(ctx, "PRJ1")
	require.NoError(t, err)
	assert.Equal(t, "Project PRJ1", got.ProjectName)
	assert.Equal(t, "mike", got.ManagerUserName)
	assert.Equal(t, status.Open, got.ProjectStatus)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2025-01-10", got.StartDate.Format(time.DateOnly))
	assert.Nil(t, got.EndDate)

	_, err = repo.GetByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Open)))
	err := repo.Create(ctx, newProject("PRJ1", "mike", status.Open))
	assert.ErrorIs(t, err, model.ErrProjectAlreadyExists)
}

func TestRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(ctx, newProject("PRJ3", "mike", status.Open)))
	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Complete)))
	require.NoError(t, repo.Create(ctx, newProject("PRJ2", "kate", status.InProgress)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "PRJ1", all[0].ProjectCode)
	assert.Equal(t, "PRJ3", all[2].ProjectCode)

	mine, err := repo.ListByManager(ctx, "mike")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "PRJ1", mine[0].ProjectCode)
	assert.Equal(t, "PRJ3", mine[1].ProjectCode)

	none, err := repo.ListByManager(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Open)))

	updated := newProject("PRJ1", "", status.InProgress)
	updated.ProjectName = "Renamed"
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByCode(ctx, "PRJ1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.ProjectName)
	assert.Equal(t, status.InProgress, got.ProjectStatus)
	assert.Empty(t, got.ManagerUserName)

	err = repo.Update(ctx, newProject("NOPE", "", status.Open))
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Open)))

	require.NoError(t, repo.UpdateStatus(ctx, "PRJ1", status.Complete))
	got, err := repo.GetByCode(ctx, "PRJ1")
	require.NoError(t, err)
	assert.Equal(t, status.Complete, got.ProjectStatus)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "NOPE", status.Complete), model.ErrProjectNotFound)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Open)))

	require.NoError(t, repo.Delete(ctx, "PRJ1"))
	_, err := repo.GetByCode(ctx, "PRJ1")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "PRJ1"), model.ErrProjectNotFound)
}

func TestRepository_CountUnfinishedByManager(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	require.NoError(t, repo.Create(ctx, newProject("PRJ1", "mike", status.Open)))
	require.NoError(t, repo.Create(ctx, newProject("PRJ2", "mike", status.InProgress)))
	require.NoError(t, repo.Create(ctx, newProject("PRJ3", "mike", status.Complete)))
	require.NoError(t, repo.Create(ctx, newProject("PRJ4", "kate", status.Open)))

	count, err := repo.CountUnfinishedByManager(ctx, "mike")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountUnfinishedByManager(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}
