package bonuserrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrBonusNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Employee or bonus type does not exist",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Either amount or percentage is required",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must not be negative and percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid bonus_month_year, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrBonusPeriodExists = apperror.New(
		apperror.CodeConflict,
		"A bonus for this employee, type and period already exists",
		http.StatusConflict,
	)
)
