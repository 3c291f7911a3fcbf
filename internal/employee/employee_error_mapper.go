package employee

import (
	employeeerrors "speed-hrm/internal/employee/errors"
	"speed-hrm/internal/shared/dberr"
)

// Constraints on the employees row itself. Any other foreign key failure
// comes from rows that reference the employee.
var referenceConstraints = []string{
	"fk_employees_department",
	"fk_employees_designation",
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return employeeerrors.ErrEmployeeNotFound
	case dberr.IsUniqueViolation(err, "uq_employees_code"):
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	case dberr.IsUniqueViolation(err, "uq_employees_email"):
		return employeeerrors.ErrEmployeeAlreadyExists
	case dberr.IsForeignKeyViolation(err, referenceConstraints...):
		return employeeerrors.ErrInvalidReference
	case dberr.IsForeignKeyViolation(err):
		return employeeerrors.ErrEmployeeInUse
	}

	return err
}
