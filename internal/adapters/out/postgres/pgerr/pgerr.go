// Package pgerr translates PostgreSQL constraint violations into the
// domain errors of internal/pkg/errs.
package pgerr

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Translate maps a unique violation to ObjectAlreadyExistsError for param and
// a foreign key violation to OperationNotAllowedError. Any other error is
// returned unchanged.
func Translate(err error, param string, value any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return errs.NewObjectAlreadyExistsError(param, value)
	case foreignKeyViolation:
		return errs.NewOperationNotAllowedErrorWithCause(
			fmt.Sprintf("%s is referenced by other records", param),
			errors.New(pgErr.ConstraintName),
		)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err was raised by a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
