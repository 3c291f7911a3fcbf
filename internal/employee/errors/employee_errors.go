package employeeerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Department or designation does not exist",
		http.StatusBadRequest,
	)
	ErrEmployeeInUse = apperror.New(
		apperror.CodeInvalidState,
		"Employee still has payroll records",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrTransferNoChange = apperror.New(
		apperror.CodeInvalidState,
		"Transfer target is the employee's current placement",
		http.StatusBadRequest,
	)
)
