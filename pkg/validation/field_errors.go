package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind classifies a single-field validation failure.
type Kind string

const (
	KindMissingField            Kind = "MissingField"
	KindInvalidEmail            Kind = "InvalidEmail"
	KindTooShort                Kind = "TooShort"
	KindTooLong                 Kind = "TooLong"
	KindInvalidProductReference Kind = "InvalidProductReference"
)

// FieldError reports the first violated rule for a submission. It is
// returned to the caller verbatim, so the message has to be presentable.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }

func NewFieldError(field string, kind Kind, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}

// FirstViolation maps a validator error to the FieldError for its first
// failed rule. Non-validation errors pass through unchanged.
func FirstViolation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return NewFieldError(field, KindMissingField, fmt.Sprintf("please fill in the required field '%s'", field))
	case "custom_email", "email":
		return NewFieldError(field, KindInvalidEmail, "invalid email address")
	case "min":
		return NewFieldError(field, KindTooShort, fmt.Sprintf("field '%s' must be at least %s characters", field, fe.Param()))
	case "max":
		return NewFieldError(field, KindTooLong, fmt.Sprintf("field '%s' must be at most %s characters", field, fe.Param()))
	case "gt", "gte":
		if field == "product_id" {
			return NewFieldError(field, KindInvalidProductReference, "invalid product selected")
		}
		return NewFieldError(field, KindTooShort, fmt.Sprintf("field '%s' is out of range", field))
	default:
		return NewFieldError(field, KindMissingField, fmt.Sprintf("field '%s' failed rule '%s'", field, fe.Tag()))
	}
}
