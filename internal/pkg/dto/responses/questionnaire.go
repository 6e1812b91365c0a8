package responses

import "medcalc-service/internal/app/models"

type SubmitResult struct {
	Result        *models.Result `json:"result"`
	SeverityLabel string         `json:"severity_label"`
	ScoreText     string         `json:"score_text"`
}

type ResultDetail struct {
	Result        *models.Result `json:"result"`
	SeverityLabel string         `json:"severity_label"`
	ScoreText     string         `json:"score_text"`
	CreatedAtText string         `json:"created_at_text,omitempty"`
	Answers       []AnswerDetail `json:"answers,omitempty"`
}

type AnswerDetail struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
	Label      string `json:"label"`
}

type HistoryItem struct {
	models.ResultSummary
	SeverityLabel string `json:"severity_label"`
	CreatedAtText string `json:"created_at_text,omitempty"`
	TimeAgo       string `json:"time_ago,omitempty"`
}

type ShareReport struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Text      string `json:"text"`
}
