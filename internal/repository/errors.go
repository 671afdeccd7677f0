package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Unique-violation sentinels. The database constraint is the source of
// truth for duplicates; repositories translate SQLSTATE 23505 into these
// so concurrent writers surface the same error as sequential ones.
var (
	ErrDuplicateEmail    = errors.New("repository: email already registered")
	ErrDuplicateUsername = errors.New("repository: username already taken")
	ErrDuplicatePending  = errors.New("repository: pending verification request exists")
	ErrDuplicateSlug     = errors.New("repository: page slug already used")
)

const uniqueViolation = "23505"

// duplicateFor maps a unique violation to the sentinel matching the
// violated constraint, or returns err unchanged.
func duplicateFor(err error, byConstraint map[string]error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if mapped, ok := byConstraint[pgErr.ConstraintName]; ok {
			return mapped
		}
	}
	return err
}
