// Package validator adapts go-playground/validator for echo's Validator hook.
package validator

import (
	"fmt"
	"strings"

	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a go-playground validator instance.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator echo will call for every Bind+Validate pair.
// Beyond the built-in rules it registers `notblank`: `required` alone accepts
// whitespace-only strings, and none of the API's text fields may be blank.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{validate: validate}
}

// Validate checks the struct's `validate` tags and converts violations into a
// validation AppError carrying a per-field message map, so the central error
// handler renders them as a 400 with field detail.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = messageForTag(fe)
	}

	return domainerrors.ErrValidationFailed.WithDetails(fields)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
