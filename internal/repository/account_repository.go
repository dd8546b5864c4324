package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository is the shared read-only lookup over both account tables.
// Email uniqueness holds across the union of teachers and students, so both
// entity services consult it before creating or re-addressing an account.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// TeacherEmailInUse reports whether any teacher other than excludeID holds
// the email. Pass excludeID 0 to match all rows.
func (r *AccountRepository) TeacherEmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	return exists, err
}

// StudentEmailInUse reports whether any student other than excludeID holds
// the email. Pass excludeID 0 to match all rows.
func (r *AccountRepository) StudentEmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	return exists, err
}
