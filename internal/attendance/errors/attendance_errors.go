package attendanceerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee already clocked in for today",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Clock in not found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"Employee already clocked out for today",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range, expected YYYY-MM-DD with from before to",
		http.StatusBadRequest,
	)
)
