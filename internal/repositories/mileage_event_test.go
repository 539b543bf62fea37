package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/models"
)

func TestMileageEventWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewMileageEventWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "alice")
	vehicleID := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)

	event, err := repo.Create(ctx, models.MileageEventCreate{
		VehicleID:   vehicleID,
		MileageDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Mileage:     61500,
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotZero(t, event.ID)
	assert.Equal(t, vehicleID, event.VehicleID)
	assert.Equal(t, "2026-01-15", event.MileageDate.Format("2006-01-02"))
	assert.Equal(t, int64(61500), event.Mileage)
}

func TestMileageEventReadRepository_ListByVehicle_NewestFirst(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMileageEventWriteRepository(db, nil)
	readRepo := NewMileageEventReadRepository(db)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "bob")
	vehicleID := insertTestVehicle(t, db, ownerID, "1FTFW1ET5DFC10312", 0)
	otherVehicleID := insertTestVehicle(t, db, ownerID, "5YJSA1DN5CFP01657", 0)

	dates := []time.Time{
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		_, err := writeRepo.Create(ctx, models.MileageEventCreate{
			VehicleID: vehicleID, MileageDate: d, Mileage: int64(1000 * (i + 1)),
		})
		require.NoError(t, err)
	}
	_, err := writeRepo.Create(ctx, models.MileageEventCreate{
		VehicleID: otherVehicleID, MileageDate: dates[0], Mileage: 500,
	})
	require.NoError(t, err)

	events, err := readRepo.ListByVehicle(ctx, vehicleID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2026-01-01", events[0].MileageDate.Format("2006-01-02"))
	assert.Equal(t, "2025-08-01", events[1].MileageDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-01", events[2].MileageDate.Format("2006-01-02"))
}

func TestMileageEventReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMileageEventWriteRepository(db, nil)
	readRepo := NewMileageEventReadRepository(db)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "carol")
	vehicleID := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)

	created, err := writeRepo.Create(ctx, models.MileageEventCreate{
		VehicleID: vehicleID, MileageDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), Mileage: 70000,
	})
	require.NoError(t, err)

	event, err := readRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, int64(70000), event.Mileage)

	missing, err := readRepo.GetByID(ctx, created.ID+1000)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMileageEventWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewMileageEventWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "dave")
	vehicleID := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)

	created, err := repo.Create(ctx, models.MileageEventCreate{
		VehicleID: vehicleID, MileageDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), Mileage: 70000,
	})
	require.NoError(t, err)

	mileage := int64(70500)
	event, err := repo.Update(ctx, created.ID, models.MileageEventUpdate{Mileage: &mileage})
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, int64(70500), event.Mileage)
	assert.Equal(t, "2025-12-24", event.MileageDate.Format("2006-01-02"))

	empty, err := repo.Update(ctx, created.ID, models.MileageEventUpdate{})
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Equal(t, int64(70500), empty.Mileage)

	missing, err := repo.Update(ctx, created.ID+1000, models.MileageEventUpdate{Mileage: &mileage})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMileageEventWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewMileageEventWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "erin")
	vehicleID := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)

	created, err := repo.Create(ctx, models.MileageEventCreate{
		VehicleID: vehicleID, MileageDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), Mileage: 70000,
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
