package contribution

import (
	contributionerrors "speed-hrm/internal/contribution/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(scheme Scheme, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return contributionerrors.ErrContributionNotFound
	case dberr.IsUniqueViolation(err, scheme.PeriodIndex()):
		return contributionerrors.ErrContributionExists
	case dberr.IsForeignKeyViolation(err, scheme.EmployeeForeignKey()):
		return contributionerrors.ErrUnknownEmployee
	}

	return err
}
