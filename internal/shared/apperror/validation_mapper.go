package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// bonus_month_year -> Bonus Month Year
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError reports the first failed rule in words.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		var out *AppError
		switch e.Tag() {
		case "required":
			out = RequiredField(field)
		case "oneof":
			out = New(CodeValidationError, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", ")), http.StatusBadRequest)
		case "monthyear":
			out = New(CodeValidationError, fmt.Sprintf("%s must be in YYYY-MM format", field), http.StatusBadRequest)
		case "clock":
			out = New(CodeValidationError, fmt.Sprintf("%s must be in HH:MM format", field), http.StatusBadRequest)
		default:
			out = InvalidField(field)
		}
		return out
	}

	return New(
		CodeValidationError,
		"Invalid input",
		http.StatusBadRequest,
	)
}
