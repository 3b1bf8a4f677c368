package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes surfaced as domain conflicts.
const (
	pgExclusionViolation = "23P01"
	pgCheckViolation     = "23514"
	pgUniqueViolation    = "23505"
	pgDuplicateObject    = "42710"
)

// IsExclusionConflict reports whether err is the appointment-interval
// exclusion constraint firing, i.e. a concurrent booking won the slot.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}

// IsCheckViolation reports whether err is a CHECK constraint violation,
// e.g. a stock decrement below zero.
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsDuplicateObject reports whether err is Postgres complaining that the
// object already exists, e.g. a constraint re-applied on a later boot.
func IsDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgDuplicateObject
}
