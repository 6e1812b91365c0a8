package session

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Container holds the questionnaire session of one signed-in device.
// Network calls run without holding the lock; a generation counter keeps a
// late response from overwriting a session that was replaced meanwhile.
type Container struct {
	mu               sync.Mutex
	QuestionnaireAPI contracts.QuestionnaireAPI
	Log              *zap.Logger

	questionnaire *models.Questionnaire
	answers       models.AnswerMap
	position      int
	submitting    bool
	generation    uint64
	lastUsed      time.Time
	now           func() time.Time
}

func NewContainer(questionnaireAPI contracts.QuestionnaireAPI, logger *zap.Logger) *Container {
	return &Container{
		QuestionnaireAPI: questionnaireAPI,
		Log:              logger,
		answers:          models.AnswerMap{},
		lastUsed:         time.Now(),
		now:              time.Now,
	}
}

// LoadQuestionnaire fetches the question set for code and starts a fresh
// session with it. On failure the previous session is left as it was.
func (c *Container) LoadQuestionnaire(ctx context.Context, code string) (*models.Questionnaire, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("Container.LoadQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, code),
	)

	questionnaire, err := c.QuestionnaireAPI.GetQuestionSet(ctx, code)
	if err != nil {
		c.Log.Error("Container.LoadQuestionnaire error fetching question set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireCodeKey, code),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceQuestionSet)
	}
	if questionnaire == nil || len(questionnaire.Questions) == 0 {
		c.Log.Error("Container.LoadQuestionnaire scoring API returned no question set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireCodeKey, code),
		)
		return nil, exceptions.ErrEmptyQuestionSet(code)
	}
	if questionnaire.Code == "" {
		questionnaire.Code = code
	}

	c.mu.Lock()
	c.questionnaire = questionnaire
	c.answers = models.AnswerMap{}
	c.position = 0
	c.submitting = false
	c.generation++
	generation := c.generation
	c.lastUsed = c.now()
	c.mu.Unlock()

	c.Log.Info("Container.LoadQuestionnaire succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, questionnaire.Code),
		zap.Int(constvars.LoggingQuestionCountKey, len(questionnaire.Questions)),
		zap.Uint64(constvars.LoggingSessionGenerationKey, generation),
	)
	return questionnaire, nil
}

// RecordAnswer stores value for questionID. Position moves forward only
// when the answered question is the one at Position.
func (c *Container) RecordAnswer(questionID string, value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.questionnaire == nil {
		return exceptions.ErrNoActiveQuestionnaire()
	}
	if c.submitting {
		return exceptions.ErrSubmissionInFlight()
	}

	index := c.questionnaire.QuestionIndex(questionID)
	if index < 0 {
		return exceptions.ErrUnknownQuestion(questionID, c.questionnaire.Code)
	}
	if !acceptsValue(&c.questionnaire.Questions[index], value) {
		return exceptions.ErrInvalidAnswerValue(questionID, value)
	}

	c.answers[questionID] = value
	if index == c.position {
		c.position++
	}
	c.lastUsed = c.now()

	c.Log.Debug("Container.RecordAnswer succeeded",
		zap.String(constvars.LoggingQuestionIDKey, questionID),
		zap.Int(constvars.LoggingAnswerValueKey, value),
		zap.Int(constvars.LoggingPositionKey, c.position),
	)
	return nil
}

// GoToPreviousQuestion moves Position back by one. It is a no-op at 0.
func (c *Container) GoToPreviousQuestion() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.questionnaire == nil {
		return exceptions.ErrNoActiveQuestionnaire()
	}
	if c.submitting {
		return exceptions.ErrSubmissionInFlight()
	}
	if c.position > 0 {
		c.position--
	}
	c.lastUsed = c.now()
	return nil
}

// Submit sends the answers for scoring. The session is cleared only after
// the scoring API accepted them; any failure leaves it untouched.
func (c *Container) Submit(ctx context.Context, clientType string) (*models.Result, error) {
	requestID := utils.GetRequestID(ctx)
	if clientType == "" {
		clientType = constvars.DefaultClientType
	}

	c.mu.Lock()
	if c.questionnaire == nil {
		c.mu.Unlock()
		return nil, exceptions.ErrNoActiveQuestionnaire()
	}
	if c.submitting {
		c.mu.Unlock()
		c.Log.Warn("Container.Submit rejected, submission already in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSubmissionInFlight()
	}

	payload, err := FormatSubmission(c.questionnaire, c.answers, clientType)
	if err != nil {
		c.mu.Unlock()
		c.Log.Info("Container.Submit answers not ready",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	c.submitting = true
	generation := c.generation
	c.mu.Unlock()

	c.Log.Info("Container.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireCodeKey, payload.QuestionnaireCode),
		zap.String(constvars.LoggingClientTypeKey, clientType),
		zap.Int(constvars.LoggingAnswerCountKey, len(payload.Answers)),
	)

	result, err := c.QuestionnaireAPI.SubmitAnswers(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A reload or abandon since the call started owns the session now.
	current := c.generation == generation
	if current {
		c.submitting = false
	}
	c.lastUsed = c.now()

	if err != nil {
		c.Log.Error("Container.Submit error submitting answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSubmitResource(err, constvars.ResourceResult)
	}

	if current {
		c.reset()
	}

	c.Log.Info("Container.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, result.ID),
		zap.Int(constvars.LoggingTotalScoreKey, result.TotalScore),
		zap.Bool(constvars.LoggingRiskFlagKey, result.HasSuicidalRisk),
	)
	return result, nil
}

// Abandon drops the current session. A submission in flight keeps running
// but its success no longer clears anything.
func (c *Container) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.submitting = false
	c.generation++
	c.lastUsed = c.now()
}

func (c *Container) reset() {
	c.questionnaire = nil
	c.answers = models.AnswerMap{}
	c.position = 0
}

func (c *Container) Snapshot() *models.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := &models.SessionSnapshot{
		State:      c.state(),
		Position:   c.position,
		Answers:    c.answers.Clone(),
		Submitting: c.submitting,
	}
	if c.questionnaire == nil {
		return snapshot
	}

	snapshot.Questionnaire = c.questionnaire
	snapshot.QuestionCount = len(c.questionnaire.Questions)
	if c.position < snapshot.QuestionCount {
		question := c.questionnaire.Questions[c.position]
		snapshot.CurrentQuestion = &question
	}
	snapshot.Missing = missingAnswers(c.questionnaire, c.answers)
	snapshot.Complete = len(snapshot.Missing) == 0
	return snapshot
}

func (c *Container) state() models.SessionState {
	switch {
	case c.questionnaire == nil:
		return models.SessionStateEmpty
	case len(c.answers) == 0:
		return models.SessionStateLoaded
	default:
		return models.SessionStateAnswering
	}
}

// idleSince reports when the container was last used and whether a
// submission is running.
func (c *Container) idleSince() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed, c.submitting
}
