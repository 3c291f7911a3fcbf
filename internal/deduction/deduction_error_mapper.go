package deduction

import (
	deductionerrors "speed-hrm/internal/deduction/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return deductionerrors.ErrDeductionNotFound
	case dberr.IsUniqueViolation(err, periodIndex):
		return deductionerrors.ErrDeductionPeriodExists
	case dberr.IsForeignKeyViolation(err):
		return deductionerrors.ErrInvalidReference
	}

	return err
}
