package exceptions

import (
	"context"
	"errors"
	"fmt"
	"medcalc-service/internal/pkg/constvars"
)

var (
	// Request handling
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON).withKind(ErrKindValidation)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).withKind(ErrKindValidation)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidation, paramName)).withKind(ErrKindValidation)
	}
	ErrQueryParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevQueryParamValidation, paramName)).withKind(ErrKindValidation)
	}
	ErrInvalidDateRange = func(start, end string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidDateRange, fmt.Sprintf(constvars.ErrDevInvalidDateRange, start, end)).withKind(ErrKindValidation)
	}
	ErrInterpretationCommentMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevInterpretationCommentMissing).withKind(ErrKindValidation)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(subject string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, subject))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing).withKind(ErrKindUnauthorized)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid).withKind(ErrKindUnauthorized)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionNotFound = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevSessionNotFound, sessionID)).withKind(ErrKindUnauthorized)
	}
	ErrNotAdmin = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevNotAdmin).withKind(ErrKindForbidden)
	}
	ErrRefreshTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevRefreshTokenMissing).withKind(ErrKindUnauthorized)
	}
	ErrSealTokens = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSealTokens)
	}
	ErrInvalidSecretKey = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidSecretKey)
	}
	ErrOpenTokens = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevOpenTokens).withKind(ErrKindUnauthorized)
	}

	// Scoring API transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevReadHTTPResponse)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Questionnaire session
	ErrEmptyQuestionSet = func(code string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientQuestionnaireUnavailable, fmt.Sprintf(constvars.ErrDevEmptyQuestionSet, code)).withKind(ErrKindFetch)
	}
	ErrNoActiveQuestionnaire = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientNoActiveQuestionnaire, constvars.ErrDevNoActiveQuestionnaire).withKind(ErrKindNoActiveSession)
	}
	ErrUnknownQuestion = func(questionID, code string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientUnknownQuestion, fmt.Sprintf(constvars.ErrDevUnknownQuestion, questionID, code)).withKind(ErrKindValidation)
	}
	ErrInvalidAnswerValue = func(questionID string, value int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidAnswer, fmt.Sprintf(constvars.ErrDevInvalidAnswerValue, value, questionID)).withKind(ErrKindValidation)
	}
	ErrFormatAnswerValue = func(questionID string, value int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFormatAnswerValue, value, questionID)).withKind(ErrKindFormat)
	}
	ErrSubmissionInFlight = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSubmissionInFlight, constvars.ErrDevSubmissionInFlight).withKind(ErrKindInFlight)
	}

	// Storage
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData).withKind(ErrKindStorage)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData).withKind(ErrKindStorage)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData).withKind(ErrKindStorage)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindDocument).withKind(ErrKindStorage)
	}
	ErrMongoDBUpsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoUpsertDocument).withKind(ErrKindStorage)
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName)).withKind(ErrKindStorage)
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName)).withKind(ErrKindStorage)
	}
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}
)

// ErrUpstreamStatus records a non-2xx answer from the scoring API. The
// upstream error text, when present, becomes the client message.
func ErrUpstreamStatus(statusCode int, upstreamMessage, method, path string) *CustomError {
	clientMessage := upstreamMessage
	if clientMessage == "" {
		clientMessage = constvars.ErrClientUpstreamUnavailable
	}
	customErr := BuildNewCustomError(nil, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, method, path))
	customErr.UpstreamStatus = statusCode
	customErr.upstreamText = upstreamMessage
	return customErr
}

// ErrFetchResource classifies a failed read. 404, 403 and 401 from the
// scoring API keep their own kinds since callers recover from them
// differently; everything else is a plain fetch failure.
func ErrFetchResource(err error, resource string) *CustomError {
	devMessage := fmt.Sprintf(constvars.ErrDevFetchResource, resource)
	upstreamMessage := UpstreamMessage(err)

	switch UpstreamStatus(err) {
	case constvars.StatusNotFound:
		return BuildNewCustomError(err, constvars.StatusNotFound, messageOr(upstreamMessage, constvars.ErrClientResultNotFound), devMessage).withKind(ErrKindNotFound)
	case constvars.StatusForbidden:
		return BuildNewCustomError(err, constvars.StatusForbidden, messageOr(upstreamMessage, constvars.ErrClientNotAuthorized), devMessage).withKind(ErrKindForbidden)
	case constvars.StatusUnauthorized:
		return BuildNewCustomError(err, constvars.StatusUnauthorized, messageOr(upstreamMessage, constvars.ErrClientNotLoggedIn), devMessage).withKind(ErrKindUnauthorized)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, devMessage).withKind(ErrKindFetch)
	}
	return BuildNewCustomError(err, constvars.StatusBadGateway, messageOr(upstreamMessage, constvars.ErrClientUpstreamUnavailable), devMessage).withKind(ErrKindFetch)
}

// ErrSubmitResource classifies a failed write. Client errors reported by the
// scoring API keep their status; transport failures become 502/504.
func ErrSubmitResource(err error, resource string) *CustomError {
	devMessage := fmt.Sprintf(constvars.ErrDevSubmitResource, resource)
	upstreamStatus := UpstreamStatus(err)

	if upstreamStatus >= 400 && upstreamStatus < 500 {
		return BuildNewCustomError(err, upstreamStatus, messageOr(UpstreamMessage(err), constvars.ErrClientSubmitFailed), devMessage).withKind(ErrKindSubmission)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, devMessage).withKind(ErrKindSubmission)
	}
	return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSubmitFailed, devMessage).withKind(ErrKindSubmission)
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
