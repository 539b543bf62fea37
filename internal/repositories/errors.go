package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation marks inserts and updates rejected by a unique
// constraint (duplicate username, email or VIN). Services map it to
// their own conflict sentinels.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolationCode = "23505"

// wrapUniqueViolation converts a Postgres 23505 error into
// ErrUniqueViolation, preserving the constraint name. Other errors pass
// through unchanged.
func wrapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}
