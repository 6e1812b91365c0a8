package exceptions

import (
	"errors"
	"medcalc-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
