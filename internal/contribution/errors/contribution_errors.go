package contributionerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrContributionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contribution not found",
		http.StatusNotFound,
	)
	ErrContributionExists = apperror.New(
		apperror.CodeConflict,
		"A contribution for this employee and month already exists",
		http.StatusConflict,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month_year, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amounts must not be negative and percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
)
