package session

import (
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
)

// FormatSubmission builds the submit payload: one answer per question in
// questionnaire order. The scoring API treats the answers as a set.
func FormatSubmission(questionnaire *models.Questionnaire, answers models.AnswerMap, clientType string) (*requests.SubmitAnswers, error) {
	if questionnaire == nil {
		return nil, exceptions.ErrNoActiveQuestionnaire()
	}

	if missing := missingAnswers(questionnaire, answers); len(missing) > 0 {
		return nil, &exceptions.IncompleteAnswersError{
			QuestionnaireCode: questionnaire.Code,
			Missing:           missing,
		}
	}

	payload := &requests.SubmitAnswers{
		QuestionnaireCode: questionnaire.Code,
		ClientType:        clientType,
		Answers:           make([]requests.SubmitAnswer, 0, len(questionnaire.Questions)),
	}
	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]
		value := answers[question.ID]
		if !acceptsValue(question, value) {
			return nil, exceptions.ErrFormatAnswerValue(question.ID, value)
		}
		payload.Answers = append(payload.Answers, requests.SubmitAnswer{
			QuestionID: question.ID,
			Value:      value,
		})
	}
	return payload, nil
}

func missingAnswers(questionnaire *models.Questionnaire, answers models.AnswerMap) []string {
	var missing []string
	for _, question := range questionnaire.Questions {
		if _, ok := answers[question.ID]; !ok {
			missing = append(missing, question.ID)
		}
	}
	return missing
}

// acceptsValue reports whether value is an answer the question can take.
// Questions without declared options take any non-negative value.
func acceptsValue(question *models.Question, value int) bool {
	if value < 0 {
		return false
	}
	if len(question.Options) == 0 {
		return true
	}
	return question.HasOption(value)
}
