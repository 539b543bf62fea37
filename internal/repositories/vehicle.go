package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

const vehicleColumns = "id, owner_id, vin, manufacturer, model, body, year, mileage, last_update_date"

// VehicleReadRepository handles vehicle read operations
type VehicleReadRepository struct {
	db *sqlx.DB
}

func NewVehicleReadRepository(db *sqlx.DB) *VehicleReadRepository {
	return &VehicleReadRepository{db: db}
}

// GetByID returns the vehicle with the given id, or nil if absent.
func (r *VehicleReadRepository) GetByID(ctx context.Context, id int64) (*models.VehicleDB, error) {
	const query = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1
	`

	var vehicle models.VehicleDB
	err := r.db.GetContext(ctx, &vehicle, query, id)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetByVIN returns the vehicle with the given VIN, or nil if absent.
// The caller is expected to pass an uppercased VIN.
func (r *VehicleReadRepository) GetByVIN(ctx context.Context, vin string) (*models.VehicleDB, error) {
	const query = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE vin = $1
	`

	var vehicle models.VehicleDB
	err := r.db.GetContext(ctx, &vehicle, query, vin)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vin},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List returns all vehicles ordered by id.
func (r *VehicleReadRepository) List(ctx context.Context) ([]models.VehicleDB, error) {
	const query = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY id
	`

	var vehicles []models.VehicleDB
	err := r.db.SelectContext(ctx, &vehicles, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(vehicles),
		"error", err,
	)

	return vehicles, err
}

// ListByOwner returns all vehicles of one user ordered by id.
func (r *VehicleReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.VehicleDB, error) {
	const query = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY id
	`

	var vehicles []models.VehicleDB
	err := r.db.SelectContext(ctx, &vehicles, query, ownerID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(vehicles),
		"error", err,
	)

	return vehicles, err
}

// VehicleWriteRepository handles vehicle write operations
type VehicleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVehicleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VehicleWriteRepository {
	return &VehicleWriteRepository{db: db, txGetter: txGetter}
}

func (r *VehicleWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a vehicle and returns the row with the generated id.
// A duplicate VIN yields ErrUniqueViolation.
func (r *VehicleWriteRepository) Create(ctx context.Context, data models.VehicleCreate) (*models.VehicleDB, error) {
	const query = `
		INSERT INTO vehicles (owner_id, vin, manufacturer, model, body, year, mileage, last_update_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE)
		RETURNING ` + vehicleColumns + `
	`
	args := []any{data.OwnerID, data.VIN, data.Manufacturer, data.Model, data.Body, data.Year, data.Mileage}

	var vehicle models.VehicleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &vehicle, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{data.OwnerID, data.VIN},
		"error", err,
	)

	if err != nil {
		return nil, wrapUniqueViolation(err)
	}
	return &vehicle, nil
}

// Update overwrites exactly the fields present in upd and returns the
// updated row, or nil if the vehicle does not exist.
func (r *VehicleWriteRepository) Update(ctx context.Context, id int64, upd models.VehicleUpdate) (*models.VehicleDB, error) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.VIN != nil {
		add("vin", *upd.VIN)
	}
	if upd.Manufacturer != nil {
		add("manufacturer", *upd.Manufacturer)
	}
	if upd.Model != nil {
		add("model", *upd.Model)
	}
	if upd.Body != nil {
		add("body", *upd.Body)
	}
	if upd.Year != nil {
		add("year", *upd.Year)
	}

	if len(set) == 0 {
		const query = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
		var vehicle models.VehicleDB
		err := sqlx.GetContext(ctx, r.executor(ctx), &vehicle, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &vehicle, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE vehicles
		SET %s
		WHERE id = $%d
		RETURNING `+vehicleColumns,
		strings.Join(set, ", "), len(args))

	var vehicle models.VehicleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &vehicle, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapUniqueViolation(err)
	}
	return &vehicle, nil
}

// UpdateMileage raises the stored odometer value to mileage, but only
// if it is strictly greater than the current one. The guard lives in
// the query itself, so two concurrent events cannot both win with a
// stale read. Reports whether the row was updated.
func (r *VehicleWriteRepository) UpdateMileage(ctx context.Context, id int64, mileage int64) (bool, error) {
	const query = `
		UPDATE vehicles
		SET mileage = $2, last_update_date = CURRENT_DATE
		WHERE id = $1 AND mileage < $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, mileage)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, mileage},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a vehicle and, through the schema, its works and
// events. Reports whether a row was deleted.
func (r *VehicleWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM vehicles WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
