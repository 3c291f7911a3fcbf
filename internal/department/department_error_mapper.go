package department

import (
	departmenterrors "speed-hrm/internal/department/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return departmenterrors.ErrDepartmentNotFound
	case dberr.IsUniqueViolation(err, "uq_departments_code"):
		return departmenterrors.ErrDepartmentCodeExists
	case dberr.IsForeignKeyViolation(err):
		return departmenterrors.ErrDepartmentInUse
	}

	return err
}
