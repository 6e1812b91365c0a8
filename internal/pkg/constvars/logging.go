package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionIDKey          = "session_id"
	LoggingUserIDKey             = "user_id"
	LoggingEmailKey              = "email"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingURLKey                = "url"
	LoggingAttemptKey            = "attempt"
	LoggingQuestionnaireCodeKey  = "questionnaire_code"
	LoggingQuestionIDKey         = "question_id"
	LoggingAnswerValueKey        = "answer_value"
	LoggingPositionKey           = "position"
	LoggingQuestionCountKey      = "question_count"
	LoggingAnswerCountKey        = "answer_count"
	LoggingMissingQuestionsKey   = "missing_questions"
	LoggingClientTypeKey         = "client_type"
	LoggingResultIDKey           = "result_id"
	LoggingTotalScoreKey         = "total_score"
	LoggingSeverityKey           = "severity"
	LoggingRiskFlagKey           = "has_suicidal_risk"
	LoggingPageKey               = "page"
	LoggingPageSizeKey           = "page_size"
	LoggingResponseLengthKey     = "response_length"
	LoggingSearchKey             = "search"
	LoggingIsActiveKey           = "is_active"
	LoggingEventKey              = "event"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
	LoggingStartDateKey          = "start_date"
	LoggingEndDateKey            = "end_date"
	LoggingNotificationIDKey     = "notification_id"
	LoggingPreferenceThemeKey    = "theme_mode"
	LoggingTelegramUsernameKey   = "telegram_username"
	LoggingSessionGenerationKey  = "session_generation"
	LoggingRemovedFromPendingKey = "removed_from_pending"
)
