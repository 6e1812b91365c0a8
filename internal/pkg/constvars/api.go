package constvars

// Paths on the external scoring API, relative to APP_API_BASE_URL.
const (
	APIPathAuthLogin          = "/auth/login"
	APIPathAuthRegister       = "/auth/register"
	APIPathAuthRefresh        = "/auth/refresh"
	APIPathAuthProfile        = "/auth/profile"
	APIPathAuthLogout         = "/auth/logout"
	APIPathAuthTelegramLink   = "/auth/telegram/link"
	APIPathProfileUpdate      = "/profile/update"
	APIPathProfileChangePass  = "/profile/change-password"
	APIPathQuestionnaires     = "/questionnaires/available"
	APIPathQuestionSetFormat  = "/questionnaires/%s/questions"
	APIPathResultsSubmit      = "/results/submit"
	APIPathResultsHistory     = "/results/history"
	APIPathResultFormat       = "/results/%s"
	APIPathResultInterpFormat = "/results/%s/request-interpretation"
	APIPathAdminPending       = "/admin/results/pending"
	APIPathAdminInterpFormat  = "/admin/results/%s/interpret"
	APIPathAdminUsers         = "/admin/users"
	APIPathAdminUserStatusFmt = "/admin/users/%s/status"
	APIPathAdminStatistics    = "/admin/statistics"
	APIPathAdminStatsDetailed = "/admin/statistics/detailed"
	APIPathNotifications      = "/notifications"
	APIPathNotificationReadFm = "/notifications/%s/read"
)

const (
	ResourceQuestionnaire  = "questionnaire"
	ResourceQuestionSet    = "question set"
	ResourceResult         = "result"
	ResourceHistory        = "result history"
	ResourceInterpretation = "interpretation"
	ResourceProfile        = "profile"
	ResourceSession        = "session"
	ResourceUsers          = "users"
	ResourceStatistics     = "statistics"
	ResourceNotifications  = "notifications"
)
