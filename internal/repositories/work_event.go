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

const workEventColumns = "id, work_id, work_date, mileage, part_price, work_price, note"

// WorkEventReadRepository handles work event read operations
type WorkEventReadRepository struct {
	db *sqlx.DB
}

func NewWorkEventReadRepository(db *sqlx.DB) *WorkEventReadRepository {
	return &WorkEventReadRepository{db: db}
}

// GetByID returns the event with the given id, or nil if absent.
func (r *WorkEventReadRepository) GetByID(ctx context.Context, id int64) (*models.WorkEventDB, error) {
	const query = `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE id = $1
	`

	var event models.WorkEventDB
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

// ListByWork returns all events of a work, newest first.
func (r *WorkEventReadRepository) ListByWork(ctx context.Context, workID int64) ([]models.WorkEventDB, error) {
	const query = `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE work_id = $1
		ORDER BY work_date DESC, id DESC
	`

	var events []models.WorkEventDB
	err := r.db.SelectContext(ctx, &events, query, workID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workID},
		"result", len(events),
		"error", err,
	)

	return events, err
}

// ListByWorkOrderedByMileage returns all events of a work in ascending
// mileage order. Used by the average-interval statistic.
func (r *WorkEventReadRepository) ListByWorkOrderedByMileage(ctx context.Context, workID int64) ([]models.WorkEventDB, error) {
	const query = `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE work_id = $1
		ORDER BY mileage
	`

	var events []models.WorkEventDB
	err := r.db.SelectContext(ctx, &events, query, workID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workID},
		"result", len(events),
		"error", err,
	)

	return events, err
}

// WorkEventWriteRepository handles work event write operations
type WorkEventWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkEventWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkEventWriteRepository {
	return &WorkEventWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkEventWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts an event and returns the row with the generated id.
func (r *WorkEventWriteRepository) Create(ctx context.Context, data models.WorkEventCreate) (*models.WorkEventDB, error) {
	const query = `
		INSERT INTO work_events (work_id, work_date, mileage, part_price, work_price, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workEventColumns + `
	`
	args := []any{data.WorkID, data.WorkDate, data.Mileage, data.PartPrice, data.WorkPrice, data.Note}

	var event models.WorkEventDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &event, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{data.WorkID, data.Mileage},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update overwrites exactly the fields present in upd and returns the
// updated row, or nil if the event does not exist.
func (r *WorkEventWriteRepository) Update(ctx context.Context, id int64, upd models.WorkEventUpdate) (*models.WorkEventDB, error) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.WorkDate != nil {
		add("work_date", *upd.WorkDate)
	}
	if upd.Mileage != nil {
		add("mileage", *upd.Mileage)
	}
	if upd.PartPrice != nil {
		add("part_price", *upd.PartPrice)
	}
	if upd.WorkPrice != nil {
		add("work_price", *upd.WorkPrice)
	}
	if upd.Note != nil {
		add("note", *upd.Note)
	}

	if len(set) == 0 {
		const query = `SELECT ` + workEventColumns + ` FROM work_events WHERE id = $1`
		var event models.WorkEventDB
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
		UPDATE work_events
		SET %s
		WHERE id = $%d
		RETURNING `+workEventColumns,
		strings.Join(set, ", "), len(args))

	var event models.WorkEventDB
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

// Delete removes an event. Reports whether a row was deleted.
func (r *WorkEventWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM work_events WHERE id = $1`

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
