package user

import (
	"speed-hrm/internal/shared/dberr"
	usererrors "speed-hrm/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return usererrors.ErrUserNotFound
	case dberr.IsUniqueViolation(err, emailIndex):
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
