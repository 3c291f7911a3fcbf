package geographyerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrCountryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Country not found",
		http.StatusNotFound,
	)
	ErrStateNotFound = apperror.New(
		apperror.CodeNotFound,
		"State not found",
		http.StatusNotFound,
	)
	ErrCityNotFound = apperror.New(
		apperror.CodeNotFound,
		"City not found",
		http.StatusNotFound,
	)
	ErrCountryExists = apperror.New(
		apperror.CodeConflict,
		"Country with this ISO code already exists",
		http.StatusConflict,
	)
	ErrStateExists = apperror.New(
		apperror.CodeConflict,
		"State already exists in this country",
		http.StatusConflict,
	)
	ErrCityExists = apperror.New(
		apperror.CodeConflict,
		"City already exists in this state",
		http.StatusConflict,
	)
	ErrCountryReferenceMissing = apperror.New(
		apperror.CodeInvalidInput,
		"Country does not exist",
		http.StatusBadRequest,
	)
	ErrStateReferenceMissing = apperror.New(
		apperror.CodeInvalidInput,
		"State does not exist",
		http.StatusBadRequest,
	)
	ErrCountryInUse = apperror.New(
		apperror.CodeInvalidState,
		"Country still has states",
		http.StatusBadRequest,
	)
	ErrStateInUse = apperror.New(
		apperror.CodeInvalidState,
		"State still has cities",
		http.StatusBadRequest,
	)
	ErrNoCitiesForCountry = apperror.New(
		apperror.CodeInvalidInput,
		"Seed file has no cities for this country code",
		http.StatusBadRequest,
	)
)
