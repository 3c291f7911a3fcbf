package masterdataerrors

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Master data record not found",
		http.StatusNotFound,
	)
	ErrNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A record with the same name already exists",
		http.StatusConflict,
	)
	ErrItemInUse = apperror.New(
		apperror.CodeInvalidState,
		"Master data record is still referenced by other records",
		http.StatusBadRequest,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeNotFound,
		"Unknown master data kind",
		http.StatusNotFound,
	)
)
