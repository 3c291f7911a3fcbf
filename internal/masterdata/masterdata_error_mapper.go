package masterdata

import (
	masterdataerrors "speed-hrm/internal/masterdata/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return masterdataerrors.ErrItemNotFound
	case dberr.IsUniqueViolation(err, kind.NameIndex()):
		return masterdataerrors.ErrNameAlreadyExists
	case dberr.IsForeignKeyViolation(err):
		return masterdataerrors.ErrItemInUse
	}

	return err
}
