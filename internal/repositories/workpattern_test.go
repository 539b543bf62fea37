package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/models"
)

func TestWorkPatternWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWorkPatternWriteRepository(db, nil)
	ctx := context.Background()

	pattern, err := repo.Create(ctx, models.WorkPatternCreate{
		Title:         "Oil change",
		IntervalMonth: 12,
		IntervalKM:    15000,
	})
	require.NoError(t, err)
	require.NotNil(t, pattern)

	assert.NotZero(t, pattern.ID)
	assert.Equal(t, "Oil change", pattern.Title)
	assert.Equal(t, 12, pattern.IntervalMonth)
	assert.Equal(t, 15000, pattern.IntervalKM)
}

func TestWorkPatternReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewWorkPatternWriteRepository(db, nil)
	readRepo := NewWorkPatternReadRepository(db)
	ctx := context.Background()

	empty, err := readRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, err := writeRepo.Create(ctx, models.WorkPatternCreate{Title: "Oil change", IntervalMonth: 12, IntervalKM: 15000})
	require.NoError(t, err)
	second, err := writeRepo.Create(ctx, models.WorkPatternCreate{Title: "Brake pads", IntervalMonth: 24, IntervalKM: 40000})
	require.NoError(t, err)

	patterns, err := readRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, first.ID, patterns[0].ID)
	assert.Equal(t, second.ID, patterns[1].ID)
}

func TestWorkPatternReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewWorkPatternWriteRepository(db, nil)
	readRepo := NewWorkPatternReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Create(ctx, models.WorkPatternCreate{Title: "Coolant flush", IntervalMonth: 36, IntervalKM: 60000})
	require.NoError(t, err)

	pattern, err := readRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, pattern)
	assert.Equal(t, "Coolant flush", pattern.Title)

	missing, err := readRepo.GetByID(ctx, created.ID+1000)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWorkPatternWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWorkPatternWriteRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.WorkPatternCreate{Title: "Oil change", IntervalMonth: 12, IntervalKM: 15000})
	require.NoError(t, err)

	km := 10000
	pattern, err := repo.Update(ctx, created.ID, models.WorkPatternUpdate{IntervalKM: &km})
	require.NoError(t, err)
	require.NotNil(t, pattern)
	assert.Equal(t, 10000, pattern.IntervalKM)
	assert.Equal(t, "Oil change", pattern.Title)
	assert.Equal(t, 12, pattern.IntervalMonth)

	empty, err := repo.Update(ctx, created.ID, models.WorkPatternUpdate{})
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Equal(t, 10000, empty.IntervalKM)

	missing, err := repo.Update(ctx, created.ID+1000, models.WorkPatternUpdate{IntervalKM: &km})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWorkPatternWriteRepository_Delete_LeavesSeededWorks(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewWorkPatternWriteRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.WorkPatternCreate{Title: "Oil change", IntervalMonth: 12, IntervalKM: 15000})
	require.NoError(t, err)

	// A seeded work is a snapshot, not a reference to the pattern.
	ownerID := insertTestUser(t, db, "alice")
	vehicleID := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)
	workID := insertTestWork(t, db, vehicleID, created.Title)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM works WHERE id = $1", workID))
	assert.Equal(t, 1, count)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
