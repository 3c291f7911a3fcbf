package usererrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusBadRequest,
	)

	ErrCannotDeactivateSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot deactivate your own account",
		http.StatusBadRequest,
	)
)
