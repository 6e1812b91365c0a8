package questionnaires

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	FindAvailableQuestionnaires(ctx context.Context) ([]models.QuestionnaireSummary, error)
	StartQuestionnaire(ctx context.Context, sessionID, code string) (*models.SessionSnapshot, error)
	GetCurrentSession(ctx context.Context, sessionID string) *models.SessionSnapshot
	RecordAnswer(ctx context.Context, sessionID string, request *requests.RecordAnswer) (*models.SessionSnapshot, error)
	GoToPreviousQuestion(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	AbandonQuestionnaire(ctx context.Context, sessionID string) *models.SessionSnapshot
	SubmitQuestionnaire(ctx context.Context, sessionID string, request *requests.SubmitQuestionnaire) (*responses.SubmitResult, error)
}
