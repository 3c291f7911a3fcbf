package taxslab

import (
	"speed-hrm/internal/shared/dberr"
	taxslaberrors "speed-hrm/internal/taxslab/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return taxslaberrors.ErrTaxSlabNotFound
	case dberr.IsUniqueViolation(err, yearMinIndex):
		return taxslaberrors.ErrTaxSlabExists
	}

	return err
}
