package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a postgres unique violation on the
// named constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return constraint == "" || pgErr.ConstraintName == constraint
	}

	errMsg := strings.ToLower(err.Error())
	if !strings.Contains(errMsg, "duplicate key value") {
		return false
	}
	return constraint == "" || strings.Contains(errMsg, strings.ToLower(constraint))
}

// IsForeignKeyViolation reports whether err is a postgres foreign key violation,
// typically a delete blocked by rows that still reference the target.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint")
}
