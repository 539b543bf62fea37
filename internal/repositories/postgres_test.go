package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway Postgres with the full
// schema. All repository tests share it through their own instance.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		first_name VARCHAR(150) NOT NULL,
		last_name VARCHAR(150),
		email VARCHAR(254) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id BIGSERIAL PRIMARY KEY,
		owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		vin VARCHAR(17) NOT NULL UNIQUE,
		manufacturer VARCHAR(100) NOT NULL,
		model VARCHAR(100) NOT NULL,
		body VARCHAR(100) NOT NULL DEFAULT '',
		year INTEGER NOT NULL,
		mileage BIGINT NOT NULL DEFAULT 0,
		last_update_date DATE NOT NULL DEFAULT CURRENT_DATE
	);

	CREATE TABLE IF NOT EXISTS work_patterns (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		interval_month INTEGER NOT NULL DEFAULT 0,
		interval_km INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS works (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id BIGINT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		title VARCHAR(200) NOT NULL,
		interval_month INTEGER NOT NULL DEFAULT 0,
		interval_km INTEGER NOT NULL DEFAULT 0,
		work_type VARCHAR(20) NOT NULL DEFAULT 'MAINTENANCE',
		note TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS work_events (
		id BIGSERIAL PRIMARY KEY,
		work_id BIGINT NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		work_date DATE NOT NULL,
		mileage BIGINT NOT NULL DEFAULT 0,
		part_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		work_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS mileage_events (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id BIGINT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		mileage_date DATE NOT NULL,
		mileage BIGINT NOT NULL DEFAULT 0
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertTestUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO users (username, first_name, email, hashed_password)
		VALUES ($1, 'Test', $1 || '@example.com', 'hash')
		RETURNING id
	`, username)
	require.NoError(t, err)
	return id
}

func insertTestVehicle(t *testing.T, db *sqlx.DB, ownerID int64, vin string, mileage int64) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO vehicles (owner_id, vin, manufacturer, model, year, mileage)
		VALUES ($1, $2, 'Lada', '2107', 1998, $3)
		RETURNING id
	`, ownerID, vin, mileage)
	require.NoError(t, err)
	return id
}

func insertTestWork(t *testing.T, db *sqlx.DB, vehicleID int64, title string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO works (vehicle_id, title, interval_month, interval_km)
		VALUES ($1, $2, 12, 15000)
		RETURNING id
	`, vehicleID, title)
	require.NoError(t, err)
	return id
}
