package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a date in %s format",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientQuestionnaireUnavailable      = "the questionnaire could not be loaded, please try again"
	ErrClientSubmitFailed                  = "your answers could not be sent, please try again"
	ErrClientIncompleteAnswers             = "please answer all questions before submitting"
	ErrClientNoActiveQuestionnaire         = "no questionnaire is in progress"
	ErrClientUnknownQuestion               = "this question is not part of the current questionnaire"
	ErrClientInvalidAnswer                 = "this answer is not allowed for the question"
	ErrClientSubmissionInFlight            = "your answers are already being sent"
	ErrClientResultNotFound                = "the result could not be found"
	ErrClientUpstreamUnavailable           = "the service is temporarily unavailable, please try again"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientValidationFailed              = "please check the highlighted fields"
	ErrClientInvalidDateRange              = "start date must not be after end date"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "input validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevReadHTTPResponse             = "failed to read HTTP response body"
	ErrDevDecodeResponse               = "failed to decode %s response"
	ErrDevFetchResource                = "failed to fetch %s from scoring API"
	ErrDevSubmitResource               = "failed to submit %s to scoring API"
	ErrDevUpstreamStatus               = "scoring API answered %d for %s %s"
	ErrDevEmptyQuestionSet             = "scoring API returned no question set for code %s"
	ErrDevIncompleteAnswers            = "questionnaire %s is missing answers for %v"
	ErrDevNoActiveQuestionnaire        = "no questionnaire loaded in session"
	ErrDevUnknownQuestion              = "question %s is not part of questionnaire %s"
	ErrDevInvalidAnswerValue           = "value %d is not an option of question %s"
	ErrDevFormatAnswerValue            = "stored value %d for question %s is not a valid option value"
	ErrDevSubmissionInFlight           = "a submission for this session is already in flight"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevAuthTokenMissing             = "authorization token missing"
	ErrDevAuthTokenInvalid             = "authorization token invalid"
	ErrDevAuthSigningMethod            = "unexpected signing method"
	ErrDevAuthGenerateToken            = "failed to generate session token"
	ErrDevSessionNotFound              = "session %s not found"
	ErrDevNotAdmin                     = "session user is not an administrator"
	ErrDevRefreshTokenMissing          = "refresh token missing for session"
	ErrDevSealTokens                   = "failed to seal session tokens"
	ErrDevOpenTokens                   = "failed to open sealed session tokens"
	ErrDevInvalidSecretKey             = "session encryption key must be 32 bytes after decoding"
	ErrDevURLParamValidation           = "url param %s validation failed"
	ErrDevQueryParamValidation         = "query param %s validation failed"
	ErrDevInvalidDateRange             = "start date %s is after end date %s"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevMongoFindDocument            = "failed to find document in mongo"
	ErrDevMongoUpsertDocument          = "failed to upsert document in mongo"
	ErrDevMinioCreateObject            = "failed to create object in bucket %s"
	ErrDevMinioPresignObject           = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevTooManyRequests              = "rate limit exceeded for %s"
	ErrDevInterpretationCommentMissing = "interpretation comment is empty"
)
