package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// registerRules registers the tags used in DTO struct tags.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("custom_email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
