// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"warden/internal/errors"
)

// CustomValidator validates request DTOs by their `validate` struct tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe renders validation failures as "Field: tag=param" pairs for error details.
// Field values are never included.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fieldErr.Param())
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field(), rule))
	}

	return strings.Join(parts, "; ")
}
