package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess           = "successfully login"
	LogoutSuccess          = "successfully logout"
	RegisterSuccess        = "successfully registered"
	ProfileGetSuccess      = "get profile successfully"
	ProfileUpdateSuccess   = "profile updated successfully"
	PasswordChangeSuccess  = "password changed successfully"
	TelegramLinkSuccess    = "telegram account linked successfully"
	QuestionnairesSuccess  = "get available questionnaires successfully"
	QuestionnaireLoaded    = "questionnaire loaded successfully"
	SessionGetSuccess      = "get questionnaire session successfully"
	AnswerRecordedSuccess  = "answer recorded successfully"
	PreviousQuestionOK     = "moved to previous question"
	SessionAbandonSuccess  = "questionnaire session abandoned"
	SubmitSuccess          = "answers submitted successfully"
	HistorySuccess         = "get result history successfully"
	ResultSuccess          = "get result successfully"
	InterpretationRequest  = "interpretation requested successfully"
	ShareResultSuccess     = "result report created successfully"
	PendingResultsSuccess  = "get pending results successfully"
	InterpretResultSuccess = "interpretation saved successfully"
	UsersSuccess           = "get users successfully"
	UserStatusSuccess      = "user status updated successfully"
	StatisticsSuccess      = "get statistics successfully"
	NotificationsSuccess   = "get notifications successfully"
	NotificationReadOK     = "notification marked as read"
	PreferencesGetSuccess  = "get preferences successfully"
	PreferencesSetSuccess  = "preferences saved successfully"
	FormValidated          = "form validated"
)
