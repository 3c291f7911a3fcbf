package workinghourserrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Working hours policy not found",
		http.StatusNotFound,
	)
	ErrPolicyNameExists = apperror.New(
		apperror.CodeConflict,
		"Working hours policy name already exists",
		http.StatusConflict,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"start_time and end_time must be HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before end_time",
		http.StatusBadRequest,
	)
	ErrInvalidHalfDay = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_hours must fit inside the working day",
		http.StatusBadRequest,
	)
)
