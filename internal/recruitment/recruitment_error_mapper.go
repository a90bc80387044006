package recruitment

import (
	"errors"
	"strings"

	recruitmenterrors "odyssey-hcm/internal/recruitment/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapApplicationPersistError catches the candidate-per-posting unique index
// so a concurrent duplicate insert surfaces as a conflict, not a raw
// database error. The pre-insert lookup only covers the sequential case.
func mapApplicationPersistError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_applications_candidate_posting" {
			return recruitmenterrors.ErrDuplicateApplication
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_applications_candidate_posting") {
		return recruitmenterrors.ErrDuplicateApplication
	}

	return err
}
