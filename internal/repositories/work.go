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

const workColumns = "id, vehicle_id, title, interval_month, interval_km, work_type, note"

// WorkReadRepository handles work read operations
type WorkReadRepository struct {
	db *sqlx.DB
}

func NewWorkReadRepository(db *sqlx.DB) *WorkReadRepository {
	return &WorkReadRepository{db: db}
}

// GetByID returns the work with the given id, or nil if absent.
func (r *WorkReadRepository) GetByID(ctx context.Context, id int64) (*models.WorkDB, error) {
	const query = `
		SELECT ` + workColumns + `
		FROM works
		WHERE id = $1
	`

	var work models.WorkDB
	err := r.db.GetContext(ctx, &work, query, id)

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
	return &work, nil
}

// ListByVehicle returns all works of a vehicle ordered by id.
func (r *WorkReadRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.WorkDB, error) {
	const query = `
		SELECT ` + workColumns + `
		FROM works
		WHERE vehicle_id = $1
		ORDER BY id
	`

	var works []models.WorkDB
	err := r.db.SelectContext(ctx, &works, query, vehicleID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vehicleID},
		"result", len(works),
		"error", err,
	)

	return works, err
}

// WorkWriteRepository handles work write operations
type WorkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkWriteRepository {
	return &WorkWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a work and returns the row with the generated id.
func (r *WorkWriteRepository) Create(ctx context.Context, data models.WorkCreate) (*models.WorkDB, error) {
	const query = `
		INSERT INTO works (vehicle_id, title, interval_month, interval_km, work_type, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workColumns + `
	`
	args := []any{data.VehicleID, data.Title, data.IntervalMonth, data.IntervalKM, data.WorkType, data.Note}

	var work models.WorkDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &work, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{data.VehicleID, data.Title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &work, nil
}

// CreateBatch inserts all works in a single multi-row INSERT. Used by
// vehicle creation to seed works from the pattern library inside the
// same transaction as the vehicle insert.
func (r *WorkWriteRepository) CreateBatch(ctx context.Context, works []models.WorkCreate) error {
	if len(works) == 0 {
		return nil
	}

	var (
		values []string
		args   []any
	)
	for _, w := range works {
		base := len(args)
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, w.VehicleID, w.Title, w.IntervalMonth, w.IntervalKM, w.WorkType, w.Note)
	}

	query := `
		INSERT INTO works (vehicle_id, title, interval_month, interval_km, work_type, note)
		VALUES ` + strings.Join(values, ", ")

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{len(works)},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update overwrites exactly the fields present in upd and returns the
// updated row, or nil if the work does not exist.
func (r *WorkWriteRepository) Update(ctx context.Context, id int64, upd models.WorkUpdate) (*models.WorkDB, error) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.IntervalMonth != nil {
		add("interval_month", *upd.IntervalMonth)
	}
	if upd.IntervalKM != nil {
		add("interval_km", *upd.IntervalKM)
	}
	if upd.WorkType != nil {
		add("work_type", *upd.WorkType)
	}
	if upd.Note != nil {
		add("note", *upd.Note)
	}

	if len(set) == 0 {
		const query = `SELECT ` + workColumns + ` FROM works WHERE id = $1`
		var work models.WorkDB
		err := sqlx.GetContext(ctx, r.executor(ctx), &work, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &work, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE works
		SET %s
		WHERE id = $%d
		RETURNING `+workColumns,
		strings.Join(set, ", "), len(args))

	var work models.WorkDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &work, query, args...)

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
	return &work, nil
}

// Delete removes a work and, through the schema, its events. Reports
// whether a row was deleted.
func (r *WorkWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM works WHERE id = $1`

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
