package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories care about
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// IsUniqueViolation checks if the error is a PostgreSQL unique violation
func IsUniqueViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == UniqueViolation
}

// IsDuplicateConstraintError checks if the error is a unique violation of a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	code, constraint, ok := pgCode(err)
	return ok && code == UniqueViolation && constraint == constraintName
}

// IsForeignKeyViolation checks if the error is a reference to a missing row.
// constraintName may be empty to match any foreign key.
func IsForeignKeyViolation(err error, constraintName string) bool {
	code, constraint, ok := pgCode(err)
	return ok && code == ForeignKeyViolation && (constraintName == "" || constraint == constraintName)
}

// IsCheckViolation checks if the error is a CHECK constraint failure
func IsCheckViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == CheckViolation
}
