package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "MEDCALC_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&per_page=%d"
)

const (
	DefaultClientType      = "mobile"
	DefaultHistoryPageSize = 10
	DefaultPendingPageSize = 10
	DefaultUsersPageSize   = 20
	MaxPageSize            = 100
	PHQ9MaxScore           = 27
	DateOnlyLayout         = "2006-01-02"
)

const (
	// Redis key prefixes
	RedisKeySession = "medcalc:session:"
)

const (
	URLParamQuestionnaireCode = "questionnaire_code"
	URLParamResultID          = "result_id"
	URLParamUserID            = "user_id"
	URLParamNotificationID    = "notification_id"
	URLQueryParamPage         = "page"
	URLQueryParamPerPage      = "per_page"
	URLQueryParamSearch       = "search"
	URLQueryParamStartDate    = "start_date"
	URLQueryParamEndDate      = "end_date"
)

const (
	EventResultSubmitted          = "result.submitted"
	EventInterpretationRequested  = "interpretation.requested"
	EventInterpretationCompleted  = "interpretation.completed"
	InterpretationStatusCompleted = "completed"
)
