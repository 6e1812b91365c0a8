package questionnaires

import (
	"context"
	"errors"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/core/history"
	"medcalc-service/internal/app/services/core/session"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type questionnaireUsecase struct {
	QuestionnaireAPI  contracts.QuestionnaireAPI
	Sessions          *session.Registry
	Histories         *history.Registry
	Events            contracts.EventPublisher
	DefaultClientType string
	Log               *zap.Logger
}

func NewQuestionnaireUsecase(
	questionnaireAPI contracts.QuestionnaireAPI,
	sessions *session.Registry,
	histories *history.Registry,
	events contracts.EventPublisher,
	defaultClientType string,
	logger *zap.Logger,
) QuestionnaireUsecase {
	if defaultClientType == "" {
		defaultClientType = constvars.DefaultClientType
	}
	return &questionnaireUsecase{
		QuestionnaireAPI:  questionnaireAPI,
		Sessions:          sessions,
		Histories:         histories,
		Events:            events,
		DefaultClientType: defaultClientType,
		Log:               logger,
	}
}

func (uc *questionnaireUsecase) FindAvailableQuestionnaires(ctx context.Context) ([]models.QuestionnaireSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("questionnaireUsecase.FindAvailableQuestionnaires called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	questionnaires, err := uc.QuestionnaireAPI.GetAvailableQuestionnaires(ctx)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.FindAvailableQuestionnaires error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceQuestionnaire)
	}

	uc.Log.Info("questionnaireUsecase.FindAvailableQuestionnaires succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(questionnaires)),
	)
	return questionnaires, nil
}

// StartQuestionnaire loads a question set into the device's session. A
// failed load keeps whatever session was there before.
func (uc *questionnaireUsecase) StartQuestionnaire(ctx context.Context, sessionID, code string) (*models.SessionSnapshot, error) {
	container := uc.Sessions.Get(sessionID)
	if _, err := container.LoadQuestionnaire(ctx, code); err != nil {
		return nil, err
	}
	return container.Snapshot(), nil
}

func (uc *questionnaireUsecase) GetCurrentSession(ctx context.Context, sessionID string) *models.SessionSnapshot {
	return uc.Sessions.Get(sessionID).Snapshot()
}

func (uc *questionnaireUsecase) RecordAnswer(ctx context.Context, sessionID string, request *requests.RecordAnswer) (*models.SessionSnapshot, error) {
	value, err := utils.ParseAnswerValue(request.Value)
	if err != nil {
		uc.Log.Info("questionnaireUsecase.RecordAnswer rejected value",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingQuestionIDKey, request.QuestionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	container := uc.Sessions.Get(sessionID)
	if err := container.RecordAnswer(request.QuestionID, value); err != nil {
		return nil, err
	}
	return container.Snapshot(), nil
}

func (uc *questionnaireUsecase) GoToPreviousQuestion(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	container := uc.Sessions.Get(sessionID)
	if err := container.GoToPreviousQuestion(); err != nil {
		return nil, err
	}
	return container.Snapshot(), nil
}

func (uc *questionnaireUsecase) AbandonQuestionnaire(ctx context.Context, sessionID string) *models.SessionSnapshot {
	uc.Log.Info("questionnaireUsecase.AbandonQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	container := uc.Sessions.Get(sessionID)
	container.Abandon()
	return container.Snapshot()
}

// SubmitQuestionnaire scores the current session. On success the device's
// cached history is dropped so the next history fetch shows the new result.
func (uc *questionnaireUsecase) SubmitQuestionnaire(ctx context.Context, sessionID string, request *requests.SubmitQuestionnaire) (*responses.SubmitResult, error) {
	clientType := request.ClientType
	if clientType == "" {
		clientType = uc.DefaultClientType
	}

	result, err := uc.Sessions.Get(sessionID).Submit(ctx, clientType)
	if err != nil {
		var incomplete *exceptions.IncompleteAnswersError
		if errors.As(err, &incomplete) {
			uc.Log.Info("questionnaireUsecase.SubmitQuestionnaire incomplete answers",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Strings(constvars.LoggingMissingQuestionsKey, incomplete.Missing),
			)
		}
		return nil, err
	}

	uc.Histories.Get(sessionID).Invalidate()

	payload := map[string]interface{}{
		"result_id":          result.ID,
		"questionnaire_code": result.QuestionnaireCode,
		"total_score":        result.TotalScore,
		"severity":           result.Severity,
		"has_suicidal_risk":  result.HasSuicidalRisk,
		"client_type":        clientType,
	}
	if sessionData := utils.GetSessionData(ctx); sessionData != nil {
		payload["user_id"] = sessionData.UserID
	}
	uc.Events.Publish(ctx, constvars.EventResultSubmitted, payload)

	return &responses.SubmitResult{
		Result:        result,
		SeverityLabel: result.Severity.Label(),
		ScoreText:     utils.FormatScore(result.TotalScore, constvars.PHQ9MaxScore),
	}, nil
}
