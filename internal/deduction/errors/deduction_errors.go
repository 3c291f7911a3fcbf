package deductionerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrDeductionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction not found",
		http.StatusNotFound,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Employee or deduction head does not exist",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeValidationError,
		"Amount is required",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must not be negative",
		http.StatusBadRequest,
	)
	ErrDeductionPeriodExists = apperror.New(
		apperror.CodeConflict,
		"A deduction for this employee, head and period already exists",
		http.StatusConflict,
	)
)
