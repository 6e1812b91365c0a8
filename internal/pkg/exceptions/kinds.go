package exceptions

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrKindFetch             = errors.New("fetch failed")
	ErrKindSubmission        = errors.New("submission failed")
	ErrKindIncompleteAnswers = errors.New("incomplete answers")
	ErrKindFormat            = errors.New("format failed")
	ErrKindNotFound          = errors.New("not found")
	ErrKindForbidden         = errors.New("forbidden")
	ErrKindUnauthorized      = errors.New("unauthorized")
	ErrKindValidation        = errors.New("validation failed")
	ErrKindNoActiveSession   = errors.New("no active questionnaire")
	ErrKindInFlight          = errors.New("submission in flight")
	ErrKindStorage           = errors.New("storage failed")
)

func isFetchVariant(kind error) bool {
	return kind == ErrKindNotFound || kind == ErrKindForbidden || kind == ErrKindUnauthorized
}
