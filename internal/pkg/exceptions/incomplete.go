package exceptions

import (
	"fmt"
	"medcalc-service/internal/pkg/constvars"
)

// IncompleteAnswersError is returned by a submit attempt while some questions
// of the loaded questionnaire have no answer. Missing keeps questionnaire order.
type IncompleteAnswersError struct {
	QuestionnaireCode string
	Missing           []string
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf(constvars.ErrDevIncompleteAnswers, e.QuestionnaireCode, e.Missing)
}

func (e *IncompleteAnswersError) Is(target error) bool {
	return target == ErrKindIncompleteAnswers
}

// FormErrors maps a form field to the first rule it violated.
type FormErrors map[string]string

func (e FormErrors) Error() string {
	return fmt.Sprintf("%s: %v", constvars.ErrDevValidationFailed, map[string]string(e))
}

func (e FormErrors) Is(target error) bool {
	return target == ErrKindValidation
}
