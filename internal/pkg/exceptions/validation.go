package exceptions

import (
	"fmt"
	"laundryroom-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator error into a client message.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "alphanum":
		return fmt.Sprintf("%s must contain only letters and numbers", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fieldError.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fieldError.Param())
	case "password":
		return "password must be at least 8 characters with an uppercase letter and a special character"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
