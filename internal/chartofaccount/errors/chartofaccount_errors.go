package chartofaccounterrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)
	ErrAccountCodeExists = apperror.New(
		apperror.CodeConflict,
		"Account code already exists",
		http.StatusConflict,
	)
	ErrParentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Parent account does not exist",
		http.StatusBadRequest,
	)
	ErrParentNotGroup = apperror.New(
		apperror.CodeInvalidState,
		"Parent account must be a group account",
		http.StatusBadRequest,
	)
	ErrSelfParent = apperror.New(
		apperror.CodeInvalidState,
		"An account cannot be its own parent",
		http.StatusBadRequest,
	)
	ErrCircularParent = apperror.New(
		apperror.CodeInvalidState,
		"Parent account is a descendant of this account",
		http.StatusBadRequest,
	)
	ErrAccountHasChildren = apperror.New(
		apperror.CodeInvalidState,
		"Account has child accounts",
		http.StatusBadRequest,
	)
)
