package questionnaires

import (
	"context"
	"errors"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/core/history"
	"medcalc-service/internal/app/services/core/session"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockQuestionnaireAPI struct {
	mock.Mock
}

func (m *MockQuestionnaireAPI) GetAvailableQuestionnaires(ctx context.Context) ([]models.QuestionnaireSummary, error) {
	args := m.Called(ctx)
	questionnaires, _ := args.Get(0).([]models.QuestionnaireSummary)
	return questionnaires, args.Error(1)
}

func (m *MockQuestionnaireAPI) GetQuestionSet(ctx context.Context, code string) (*models.Questionnaire, error) {
	args := m.Called(ctx, code)
	questionnaire, _ := args.Get(0).(*models.Questionnaire)
	return questionnaire, args.Error(1)
}

func (m *MockQuestionnaireAPI) SubmitAnswers(ctx context.Context, payload *requests.SubmitAnswers) (*models.Result, error) {
	args := m.Called(ctx, payload)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	return m.Called(ctx, event, payload).Error(0)
}

func twoQuestions() *models.Questionnaire {
	options := []models.Option{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}, {Value: 2, Label: "2"}, {Value: 3, Label: "3"}}
	return &models.Questionnaire{
		Code: "phq9",
		Name: "PHQ-9",
		Questions: []models.Question{
			{ID: "1", Options: options},
			{ID: "9", Options: options},
		},
	}
}

func newUsecase(api *MockQuestionnaireAPI, events *MockEventPublisher) QuestionnaireUsecase {
	logger := zap.NewNop()
	return NewQuestionnaireUsecase(api, session.NewRegistry(api, logger), history.NewRegistry(nil, logger), events, "", logger)
}

func TestStartQuestionnaire_ReturnsFirstQuestion(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	uc := newUsecase(api, new(MockEventPublisher))

	snapshot, err := uc.StartQuestionnaire(context.Background(), "device-1", "phq9")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateLoaded, snapshot.State)
	require.NotNil(t, snapshot.CurrentQuestion)
	assert.Equal(t, "1", snapshot.CurrentQuestion.ID)
}

func TestRecordAnswer_AcceptsNumericString(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	uc := newUsecase(api, new(MockEventPublisher))
	_, err := uc.StartQuestionnaire(context.Background(), "device-1", "phq9")
	require.NoError(t, err)

	snapshot, err := uc.RecordAnswer(context.Background(), "device-1", &requests.RecordAnswer{QuestionID: "1", Value: "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Answers["1"])
	assert.Equal(t, 1, snapshot.Position)
}

func TestRecordAnswer_RejectsFractionalValue(t *testing.T) {
	uc := newUsecase(new(MockQuestionnaireAPI), new(MockEventPublisher))

	_, err := uc.RecordAnswer(context.Background(), "device-1", &requests.RecordAnswer{QuestionID: "1", Value: 1.5})
	assert.ErrorIs(t, err, exceptions.ErrKindValidation)
}

func TestRecordAnswer_DevicesAreIsolated(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	uc := newUsecase(api, new(MockEventPublisher))
	_, err := uc.StartQuestionnaire(context.Background(), "device-1", "phq9")
	require.NoError(t, err)

	_, err = uc.RecordAnswer(context.Background(), "device-2", &requests.RecordAnswer{QuestionID: "1", Value: 0})
	assert.ErrorIs(t, err, exceptions.ErrKindNoActiveSession)
	assert.Equal(t, models.SessionStateEmpty, uc.GetCurrentSession(context.Background(), "device-2").State)
}

func TestSubmitQuestionnaire_PublishesRiskFlag(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	api.On("SubmitAnswers", mock.Anything, mock.MatchedBy(func(payload *requests.SubmitAnswers) bool {
		return payload.ClientType == constvars.DefaultClientType && len(payload.Answers) == 2
	})).Return(&models.Result{ID: "42", TotalScore: 5, Severity: models.SeverityMild, HasSuicidalRisk: true}, nil)

	events := new(MockEventPublisher)
	events.On("Publish", mock.Anything, constvars.EventResultSubmitted, mock.MatchedBy(func(payload map[string]interface{}) bool {
		return payload["result_id"] == "42" && payload["has_suicidal_risk"] == true
	})).Return(nil)

	uc := newUsecase(api, events)
	ctx := context.Background()
	_, err := uc.StartQuestionnaire(ctx, "device-1", "phq9")
	require.NoError(t, err)
	_, err = uc.RecordAnswer(ctx, "device-1", &requests.RecordAnswer{QuestionID: "1", Value: 3})
	require.NoError(t, err)
	_, err = uc.RecordAnswer(ctx, "device-1", &requests.RecordAnswer{QuestionID: "9", Value: 2})
	require.NoError(t, err)

	response, err := uc.SubmitQuestionnaire(ctx, "device-1", &requests.SubmitQuestionnaire{})
	require.NoError(t, err)
	assert.Equal(t, "5/27", response.ScoreText)
	assert.Equal(t, models.SeverityMild.Label(), response.SeverityLabel)
	assert.Equal(t, models.SessionStateEmpty, uc.GetCurrentSession(ctx, "device-1").State)
	events.AssertExpectations(t)
}

func TestSubmitQuestionnaire_EventFailureDoesNotFailSubmit(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	api.On("SubmitAnswers", mock.Anything, mock.Anything).Return(&models.Result{ID: "7", TotalScore: 1}, nil)
	events := new(MockEventPublisher)
	events.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := newUsecase(api, events)
	ctx := context.Background()
	_, err := uc.StartQuestionnaire(ctx, "device-1", "phq9")
	require.NoError(t, err)
	_, err = uc.RecordAnswer(ctx, "device-1", &requests.RecordAnswer{QuestionID: "1", Value: 0})
	require.NoError(t, err)
	_, err = uc.RecordAnswer(ctx, "device-1", &requests.RecordAnswer{QuestionID: "9", Value: 1})
	require.NoError(t, err)

	response, err := uc.SubmitQuestionnaire(ctx, "device-1", &requests.SubmitQuestionnaire{ClientType: "web"})
	require.NoError(t, err)
	assert.Equal(t, "7", response.Result.ID)
}

func TestSubmitQuestionnaire_IncompleteListsMissing(t *testing.T) {
	api := new(MockQuestionnaireAPI)
	api.On("GetQuestionSet", mock.Anything, "phq9").Return(twoQuestions(), nil)
	uc := newUsecase(api, new(MockEventPublisher))
	ctx := context.Background()
	_, err := uc.StartQuestionnaire(ctx, "device-1", "phq9")
	require.NoError(t, err)

	_, err = uc.SubmitQuestionnaire(ctx, "device-1", &requests.SubmitQuestionnaire{})
	var incomplete *exceptions.IncompleteAnswersError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"1", "9"}, incomplete.Missing)
	api.AssertNotCalled(t, "SubmitAnswers", mock.Anything, mock.Anything)
}
