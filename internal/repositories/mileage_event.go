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

const mileageEventColumns = "id, vehicle_id, mileage_date, mileage"

// MileageEventReadRepository handles mileage event read operations
type MileageEventReadRepository struct {
	db *sqlx.DB
}

func NewMileageEventReadRepository(db *sqlx.DB) *MileageEventReadRepository {
	return &MileageEventReadRepository{db: db}
}

// GetByID returns the reading with the given id, or nil if absent.
func (r *MileageEventReadRepository) GetByID(ctx context.Context, id int64) (*models.MileageEventDB, error) {
	const query = `
		SELECT ` + mileageEventColumns + `
		FROM mileage_events
		WHERE id = $1
	`

	var event models.MileageEventDB
	err := r.db.GetContext(ctx, &event, query, id)

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
	return &event, nil
}

// ListByVehicle returns all readings of a vehicle, newest first.
func (r *MileageEventReadRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.MileageEventDB, error) {
	const query = `
		SELECT ` + mileageEventColumns + `
		FROM mileage_events
		WHERE vehicle_id = $1
		ORDER BY mileage_date DESC, id DESC
	`

	var events []models.MileageEventDB
	err := r.db.SelectContext(ctx, &events, query, vehicleID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vehicleID},
		"result", len(events),
		"error", err,
	)

	return events, err
}

// MileageEventWriteRepository handles mileage event write operations
type MileageEventWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMileageEventWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MileageEventWriteRepository {
	return &MileageEventWriteRepository{db: db, txGetter: txGetter}
}

func (r *MileageEventWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a reading and returns the row with the generated id.
func (r *MileageEventWriteRepository) Create(ctx context.Context, data models.MileageEventCreate) (*models.MileageEventDB, error) {
	const query = `
		INSERT INTO mileage_events (vehicle_id, mileage_date, mileage)
		VALUES ($1, $2, $3)
		RETURNING ` + mileageEventColumns + `
	`

	var event models.MileageEventDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &event, query, data.VehicleID, data.MileageDate, data.Mileage)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{data.VehicleID, data.Mileage},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update overwrites exactly the fields present in upd and returns the
// updated row, or nil if the reading does not exist.
func (r *MileageEventWriteRepository) Update(ctx context.Context, id int64, upd models.MileageEventUpdate) (*models.MileageEventDB, error) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.MileageDate != nil {
		add("mileage_date", *upd.MileageDate)
	}
	if upd.Mileage != nil {
		add("mileage", *upd.Mileage)
	}

	if len(set) == 0 {
		const query = `SELECT ` + mileageEventColumns + ` FROM mileage_events WHERE id = $1`
		var event models.MileageEventDB
		err := sqlx.GetContext(ctx, r.executor(ctx), &event, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &event, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE mileage_events
		SET %s
		WHERE id = $%d
		RETURNING `+mileageEventColumns,
		strings.Join(set, ", "), len(args))

	var event models.MileageEventDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &event, query, args...)

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
	return &event, nil
}

// Delete removes a reading. Reports whether a row was deleted.
func (r *MileageEventWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM mileage_events WHERE id = $1`

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
