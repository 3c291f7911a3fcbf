package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)

	ErrDuplicate = New(
		CodeConflict,
		"A record with the same unique value already exists",
		http.StatusConflict,
	)

	ErrReferenceMissing = New(
		CodeInvalidInput,
		"A referenced record does not exist",
		http.StatusBadRequest,
	)

	ErrReferenced = New(
		CodeInvalidState,
		"Record is still referenced by other records",
		http.StatusBadRequest,
	)

	ErrEmptyBulk = New(
		CodeInvalidInput,
		"At least one item is required",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeValidationError,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidationError,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
