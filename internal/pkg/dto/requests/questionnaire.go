package requests

// RecordAnswer accepts the option value as a number or a numeric string.
type RecordAnswer struct {
	QuestionID string      `json:"question_id" validate:"required"`
	Value      interface{} `json:"value"`
}

type SubmitQuestionnaire struct {
	ClientType string `json:"client_type" validate:"omitempty,oneof=mobile web telegram"`
}

// SubmitAnswers is the body the scoring API expects on /results/submit.
type SubmitAnswers struct {
	QuestionnaireCode string         `json:"questionnaire_code"`
	ClientType        string         `json:"client_type"`
	Answers           []SubmitAnswer `json:"answers"`
}

type SubmitAnswer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}
