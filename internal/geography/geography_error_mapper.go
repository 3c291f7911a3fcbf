package geography

import (
	geographyerrors "speed-hrm/internal/geography/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapCountryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return geographyerrors.ErrCountryNotFound
	case dberr.IsUniqueViolation(err, countryISO2Index):
		return geographyerrors.ErrCountryExists
	case dberr.IsForeignKeyViolation(err, stateCountryFK):
		return geographyerrors.ErrCountryInUse
	}

	return err
}

func mapStateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return geographyerrors.ErrStateNotFound
	case dberr.IsUniqueViolation(err, stateNameIndex):
		return geographyerrors.ErrStateExists
	case dberr.IsForeignKeyViolation(err, stateCountryFK):
		return geographyerrors.ErrCountryReferenceMissing
	case dberr.IsForeignKeyViolation(err, cityStateFK):
		return geographyerrors.ErrStateInUse
	}

	return err
}

func mapCityError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return geographyerrors.ErrCityNotFound
	case dberr.IsUniqueViolation(err, cityNameIndex):
		return geographyerrors.ErrCityExists
	case dberr.IsForeignKeyViolation(err, cityStateFK):
		return geographyerrors.ErrStateReferenceMissing
	}

	return err
}
