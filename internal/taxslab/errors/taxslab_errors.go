package taxslaberrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrTaxSlabNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tax slab not found",
		http.StatusNotFound,
	)
	ErrTaxSlabExists = apperror.New(
		apperror.CodeConflict,
		"A tax slab starting at this income already exists for the fiscal year",
		http.StatusConflict,
	)
	ErrInvalidIncomeRange = apperror.New(
		apperror.CodeInvalidInput,
		"min_income must not exceed max_income",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"rate must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Income bounds and fixed amount must not be negative",
		http.StatusBadRequest,
	)
)
