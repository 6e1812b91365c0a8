package apiclient

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *scoringAPIClient) GetAvailableQuestionnaires(ctx context.Context) ([]models.QuestionnaireSummary, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetAvailableQuestionnaires called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathQuestionnaires,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetAvailableQuestionnaires error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var questionnaires []models.QuestionnaireSummary
	err = decodeEnvelope(body, "questionnaires", &questionnaires)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetAvailableQuestionnaires error decoding list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaire)
	}

	c.Log.Info("scoringAPIClient.GetAvailableQuestionnaires succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(questionnaires)),
	)
	return questionnaires, nil
}

// GetQuestionSet returns nil without error when the scoring API answers
// with no question set.
func (c *scoringAPIClient) GetQuestionSet(ctx context.Context, code string) (*models.Questionnaire, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetQuestionSet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, code),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          fmt.Sprintf(constvars.APIPathQuestionSetFormat, url.PathEscape(code)),
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetQuestionSet error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireCodeKey, code),
			zap.Error(err),
		)
		return nil, err
	}

	var envelope struct {
		Questionnaire *models.Questionnaire `json:"questionnaire"`
	}
	err = json.Unmarshal(body, &envelope)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetQuestionSet error decoding question set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionSet)
	}

	questionCount := 0
	if envelope.Questionnaire != nil {
		questionCount = len(envelope.Questionnaire.Questions)
	}
	c.Log.Info("scoringAPIClient.GetQuestionSet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, code),
		zap.Int(constvars.LoggingQuestionCountKey, questionCount),
	)
	return envelope.Questionnaire, nil
}

func (c *scoringAPIClient) SubmitAnswers(ctx context.Context, payload *requests.SubmitAnswers) (*models.Result, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.SubmitAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, payload.QuestionnaireCode),
		zap.Int(constvars.LoggingAnswerCountKey, len(payload.Answers)),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodPost,
		path:          constvars.APIPathResultsSubmit,
		body:          payload,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.SubmitAnswers error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := new(models.Result)
	err = json.Unmarshal(body, result)
	if err != nil {
		c.Log.Error("scoringAPIClient.SubmitAnswers error decoding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceResult)
	}
	if result.QuestionnaireCode == "" {
		result.QuestionnaireCode = payload.QuestionnaireCode
	}

	c.Log.Info("scoringAPIClient.SubmitAnswers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, result.ID),
		zap.Int(constvars.LoggingTotalScoreKey, result.TotalScore),
		zap.String(constvars.LoggingSeverityKey, string(result.Severity)),
	)
	return result, nil
}
