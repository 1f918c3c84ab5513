package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for use as echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates the configured validator: json tag names in error reports,
// null-type awareness and the custom rules registered.
func New() *CustomValidator {
	v := validator.New()

	// Report errors by json field name so clients see "client_name", not
	// "ClientName".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("failed to register validation rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
