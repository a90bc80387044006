package employee

import (
	"errors"
	"strings"

	employeeerrors "odyssey-hcm/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	employeeNumberConstraint = "uq_employee_number"
	employeeEmailConstraint  = "uq_employee_email"
)

// mapRepositoryError translates driver-level failures into the module's
// sentinels so unique-violation races surface as conflicts, not 500s.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case employeeNumberConstraint:
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		case employeeEmailConstraint:
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	// Fallback for drivers that flatten the PG error into text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		switch {
		case strings.Contains(msg, employeeNumberConstraint):
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		case strings.Contains(msg, employeeEmailConstraint):
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	return err
}
