package apperror

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures gin's validator: json field names in errors and the
// custom tags used by the request DTOs.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the json tag name func plus the "monthyear"
// (YYYY-MM) and "clock" (HH:MM, 24h) tags.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("monthyear", layoutValidator("2006-01"))
	_ = v.RegisterValidation("clock", layoutValidator("15:04"))
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != len(layout) {
			return false
		}
		_, err := time.Parse(layout, s)
		return err == nil
	}
}
