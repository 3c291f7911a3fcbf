package chartofaccount

import (
	chartofaccounterrors "speed-hrm/internal/chartofaccount/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return chartofaccounterrors.ErrAccountNotFound
	case dberr.IsUniqueViolation(err, codeIndex):
		return chartofaccounterrors.ErrAccountCodeExists
	case dberr.IsForeignKeyViolation(err, parentFK):
		return chartofaccounterrors.ErrAccountHasChildren
	}

	return err
}
