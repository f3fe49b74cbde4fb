package usecase

import (
	"errors"
	"strings"

	"health-records-service/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeError marks a persistence failure as retryable upstream trouble.
func storeError(err error) error {
	return apperror.Wrap(apperror.KindUpstream, "data store unavailable", err)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
