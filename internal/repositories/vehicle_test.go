package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/models"
)

func TestVehicleWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "alice")

	vehicle, err := repo.Create(ctx, models.VehicleCreate{
		OwnerID:      ownerID,
		VIN:          "JHMCM56557C404453",
		Manufacturer: "Honda",
		Model:        "Accord",
		Body:         "sedan",
		Year:         2007,
		Mileage:      120000,
	})
	require.NoError(t, err)
	require.NotNil(t, vehicle)

	assert.NotZero(t, vehicle.ID)
	assert.Equal(t, ownerID, vehicle.OwnerID)
	assert.Equal(t, "JHMCM56557C404453", vehicle.VIN)
	assert.Equal(t, "Honda", vehicle.Manufacturer)
	assert.Equal(t, int64(120000), vehicle.Mileage)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), vehicle.LastUpdateDate.Format("2006-01-02"))
}

func TestVehicleWriteRepository_Create_DuplicateVIN(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "bob")
	insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 0)

	vehicle, err := repo.Create(ctx, models.VehicleCreate{
		OwnerID:      ownerID,
		VIN:          "JHMCM56557C404453",
		Manufacturer: "Honda",
		Model:        "Accord",
		Year:         2007,
	})
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Nil(t, vehicle)
}

func TestVehicleReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleReadRepository(db)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "carol")
	id := insertTestVehicle(t, db, ownerID, "1FTFW1ET5DFC10312", 5000)

	vehicle, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, "1FTFW1ET5DFC10312", vehicle.VIN)

	missing, err := repo.GetByID(ctx, id+1000)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicleReadRepository_GetByVIN(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleReadRepository(db)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "dave")
	id := insertTestVehicle(t, db, ownerID, "5YJSA1DN5CFP01657", 0)

	vehicle, err := repo.GetByVIN(ctx, "5YJSA1DN5CFP01657")
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, id, vehicle.ID)

	missing, err := repo.GetByVIN(ctx, "JHMCM56557C404453")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicleReadRepository_ListByOwner(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleReadRepository(db)
	ctx := context.Background()

	firstOwner := insertTestUser(t, db, "erin")
	secondOwner := insertTestUser(t, db, "frank")
	insertTestVehicle(t, db, firstOwner, "JHMCM56557C404453", 0)
	insertTestVehicle(t, db, firstOwner, "1FTFW1ET5DFC10312", 0)
	insertTestVehicle(t, db, secondOwner, "5YJSA1DN5CFP01657", 0)

	vehicles, err := repo.ListByOwner(ctx, firstOwner)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	for _, v := range vehicles {
		assert.Equal(t, firstOwner, v.OwnerID)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestVehicleWriteRepository_Update_Partial(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "grace")
	id := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 42000)

	body := "wagon"
	year := 2008
	vehicle, err := repo.Update(ctx, id, models.VehicleUpdate{Body: &body, Year: &year})
	require.NoError(t, err)
	require.NotNil(t, vehicle)

	assert.Equal(t, "wagon", vehicle.Body)
	assert.Equal(t, 2008, vehicle.Year)
	// Untouched fields keep their values.
	assert.Equal(t, "JHMCM56557C404453", vehicle.VIN)
	assert.Equal(t, int64(42000), vehicle.Mileage)
}

func TestVehicleWriteRepository_Update_Empty(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "heidi")
	id := insertTestVehicle(t, db, ownerID, "1FTFW1ET5DFC10312", 7)

	vehicle, err := repo.Update(ctx, id, models.VehicleUpdate{})
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, int64(7), vehicle.Mileage)

	missing, err := repo.Update(ctx, id+1000, models.VehicleUpdate{})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicleWriteRepository_UpdateMileage(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	readRepo := NewVehicleReadRepository(db)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "ivan")
	id := insertTestVehicle(t, db, ownerID, "JHMCM56557C404453", 50000)

	t.Run("LowerIsIgnored", func(t *testing.T) {
		updated, err := repo.UpdateMileage(ctx, id, 49999)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("EqualIsIgnored", func(t *testing.T) {
		updated, err := repo.UpdateMileage(ctx, id, 50000)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("HigherWins", func(t *testing.T) {
		updated, err := repo.UpdateMileage(ctx, id, 50001)
		require.NoError(t, err)
		assert.True(t, updated)

		vehicle, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, vehicle)
		assert.Equal(t, int64(50001), vehicle.Mileage)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		updated, err := repo.UpdateMileage(ctx, id+1000, 99999)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

// The strictly-greater guard must live inside the UPDATE statement, not
// in a read-then-write sequence. The sqlmock expectation pins the query
// shape down.
func TestVehicleWriteRepository_UpdateMileage_GuardedQuery(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewVehicleWriteRepository(db, nil)

	guarded := regexp.QuoteMeta("SET mileage = $2, last_update_date = CURRENT_DATE") +
		`\s+` + regexp.QuoteMeta("WHERE id = $1 AND mileage < $2")
	mock.ExpectExec(guarded).
		WithArgs(int64(1), int64(60000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateMileage(context.Background(), 1, 60000)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleWriteRepository_Delete_CascadesWorks(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	ownerID := insertTestUser(t, db, "judy")
	id := insertTestVehicle(t, db, ownerID, "5YJSA1DN5CFP01657", 0)
	workID := insertTestWork(t, db, id, "Oil change")

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM works WHERE id = $1", workID))
	assert.Zero(t, count)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
