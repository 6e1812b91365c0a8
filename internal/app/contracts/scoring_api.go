package contracts

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
)

type AuthAPI interface {
	Login(ctx context.Context, request *requests.Login) (*models.AuthTokens, error)
	Register(ctx context.Context, request *requests.Register) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) error
	ChangePassword(ctx context.Context, request *requests.ChangePassword) error
	LinkTelegram(ctx context.Context, request *requests.LinkTelegram) error
	Logout(ctx context.Context) error
}

type QuestionnaireAPI interface {
	GetAvailableQuestionnaires(ctx context.Context) ([]models.QuestionnaireSummary, error)
	GetQuestionSet(ctx context.Context, code string) (*models.Questionnaire, error)
	SubmitAnswers(ctx context.Context, payload *requests.SubmitAnswers) (*models.Result, error)
}

type ResultsAPI interface {
	GetHistory(ctx context.Context, page, pageSize int) (*models.ResultPage, error)
	GetResult(ctx context.Context, resultID string) (*models.Result, error)
	RequestInterpretation(ctx context.Context, resultID string) error
}

type AdminAPI interface {
	GetPendingResults(ctx context.Context, page, pageSize int) (*models.PendingPage, error)
	InterpretResult(ctx context.Context, resultID string, request *requests.Interpretation) error
	GetUsers(ctx context.Context, request *requests.FindUsers) (*models.UserPage, error)
	UpdateUserStatus(ctx context.Context, userID string, isActive bool) error
	GetStatistics(ctx context.Context) (*models.Statistics, error)
	GetDetailedStatistics(ctx context.Context, request *requests.DetailedStatistics) (models.DetailedStatistics, error)
}

type NotificationsAPI interface {
	GetNotifications(ctx context.Context) (*models.NotificationList, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// ScoringAPIClient is the whole external scoring API.
type ScoringAPIClient interface {
	AuthAPI
	QuestionnaireAPI
	ResultsAPI
	AdminAPI
	NotificationsAPI
}
