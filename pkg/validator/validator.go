package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns validator errors into human readable
// messages suitable for the response envelope's errors list.
func (cv *CustomValidator) FormatValidationErrors(err error) []string {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, field+" must be a valid email address")
			case "min":
				messages = append(messages, field+" must be at least "+e.Param())
			case "max":
				messages = append(messages, field+" must be at most "+e.Param())
			case "gte":
				messages = append(messages, field+" must be greater than or equal to "+e.Param())
			case "lte":
				messages = append(messages, field+" must be less than or equal to "+e.Param())
			default:
				messages = append(messages, field+" is invalid")
			}
		}
	}

	if len(messages) == 0 {
		messages = append(messages, "invalid request")
	}
	return messages
}
