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

const workPatternColumns = "id, title, interval_month, interval_km"

// WorkPatternReadRepository handles work pattern read operations
type WorkPatternReadRepository struct {
	db *sqlx.DB
}

func NewWorkPatternReadRepository(db *sqlx.DB) *WorkPatternReadRepository {
	return &WorkPatternReadRepository{db: db}
}

// GetByID returns the pattern with the given id, or nil if absent.
func (r *WorkPatternReadRepository) GetByID(ctx context.Context, id int64) (*models.WorkPatternDB, error) {
	const query = `
		SELECT ` + workPatternColumns + `
		FROM work_patterns
		WHERE id = $1
	`

	var pattern models.WorkPatternDB
	err := r.db.GetContext(ctx, &pattern, query, id)

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
	return &pattern, nil
}

// List returns the whole pattern library ordered by id.
func (r *WorkPatternReadRepository) List(ctx context.Context) ([]models.WorkPatternDB, error) {
	const query = `
		SELECT ` + workPatternColumns + `
		FROM work_patterns
		ORDER BY id
	`

	var patterns []models.WorkPatternDB
	err := r.db.SelectContext(ctx, &patterns, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(patterns),
		"error", err,
	)

	return patterns, err
}

// WorkPatternWriteRepository handles work pattern write operations
type WorkPatternWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkPatternWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkPatternWriteRepository {
	return &WorkPatternWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkPatternWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a pattern and returns the row with the generated id.
func (r *WorkPatternWriteRepository) Create(ctx context.Context, data models.WorkPatternCreate) (*models.WorkPatternDB, error) {
	const query = `
		INSERT INTO work_patterns (title, interval_month, interval_km)
		VALUES ($1, $2, $3)
		RETURNING ` + workPatternColumns + `
	`

	var pattern models.WorkPatternDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &pattern, query, data.Title, data.IntervalMonth, data.IntervalKM)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{data.Title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Update overwrites exactly the fields present in upd and returns the
// updated row, or nil if the pattern does not exist.
func (r *WorkPatternWriteRepository) Update(ctx context.Context, id int64, upd models.WorkPatternUpdate) (*models.WorkPatternDB, error) {
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

	if len(set) == 0 {
		const query = `SELECT ` + workPatternColumns + ` FROM work_patterns WHERE id = $1`
		var pattern models.WorkPatternDB
		err := sqlx.GetContext(ctx, r.executor(ctx), &pattern, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &pattern, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE work_patterns
		SET %s
		WHERE id = $%d
		RETURNING `+workPatternColumns,
		strings.Join(set, ", "), len(args))

	var pattern models.WorkPatternDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &pattern, query, args...)

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
	return &pattern, nil
}

// Delete removes a pattern. Existing works seeded from it are
// snapshots and stay untouched. Reports whether a row was deleted.
func (r *WorkPatternWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM work_patterns WHERE id = $1`

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
