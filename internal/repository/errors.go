package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by the repositories. Services and handlers match on
// these instead of inspecting driver errors.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("account with this email already exists")
	ErrDuplicateGroupToken = errors.New("group with this token already exists")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// mapNoRows converts pgx's no-rows sentinel into ErrNotFound.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
