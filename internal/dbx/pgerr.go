package dbx

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/planmytrip/tripstore/internal/common"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// ClassifyError tags PostgreSQL constraint violations and concurrent-write
// failures with the matching sentinel from package common, keeping the
// driver error in the chain. Any other error, including nil, is returned
// unchanged.
func ClassifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %w", common.ErrorAlreadyExists, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %w", common.ErrorNotFound, err)
	case codeSerializationFailure, codeDeadlockDetected:
		// Under repeatable_read and serializable a concurrent writer is
		// reported here rather than as a zero-row update.
		return fmt.Errorf("%w: %w", common.ErrVersionConflict, err)
	default:
		return err
	}
}
