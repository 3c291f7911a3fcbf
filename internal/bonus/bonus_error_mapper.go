package bonus

import (
	bonuserrors "speed-hrm/internal/bonus/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return bonuserrors.ErrBonusNotFound
	case dberr.IsUniqueViolation(err, periodIndex):
		return bonuserrors.ErrBonusPeriodExists
	case dberr.IsForeignKeyViolation(err):
		return bonuserrors.ErrInvalidReference
	}

	return err
}
