package workinghours

import (
	"speed-hrm/internal/shared/dberr"
	workinghourserrors "speed-hrm/internal/workinghours/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return workinghourserrors.ErrPolicyNotFound
	case dberr.IsUniqueViolation(err, nameIndex):
		return workinghourserrors.ErrPolicyNameExists
	}

	return err
}
