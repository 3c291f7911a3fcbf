package departmenterrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"Department code already exists",
		http.StatusConflict,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeInvalidState,
		"Department still has employees assigned",
		http.StatusBadRequest,
	)
)
