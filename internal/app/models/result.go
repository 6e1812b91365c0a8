package models

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Result is computed by the scoring API. The BFF never recomputes a score.
type Result struct {
	ID                     string             `json:"id"`
	QuestionnaireCode      string             `json:"questionnaire_code,omitempty"`
	Questionnaire          *QuestionnaireRef  `json:"questionnaire,omitempty"`
	TotalScore             int                `json:"total_score"`
	Severity               Severity           `json:"severity"`
	Interpretation         string             `json:"interpretation,omitempty"`
	Recommendations        string             `json:"recommendations,omitempty"`
	HasSuicidalRisk        bool               `json:"has_suicidal_risk"`
	RequiresInterpretation bool               `json:"requires_interpretation"`
	IsInterpreted          bool               `json:"is_interpreted"`
	InterpretationComment  string             `json:"interpretation_comment,omitempty"`
	InterpretationDate     string             `json:"interpretation_date,omitempty"`
	Answers                map[string]int     `json:"answers,omitempty"`
	User                   *User              `json:"user,omitempty"`
	CreatedAt              string             `json:"created_at,omitempty"`
}

type QuestionnaireRef struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// ResultSummary is one row of the history list.
type ResultSummary struct {
	ID                    string   `json:"id"`
	QuestionnaireName     string   `json:"questionnaire_name,omitempty"`
	TotalScore            int      `json:"total_score"`
	Severity              Severity `json:"severity"`
	HasSuicidalRisk       bool     `json:"has_suicidal_risk"`
	IsInterpreted         bool     `json:"is_interpreted"`
	InterpretationPending bool     `json:"interpretation_pending,omitempty"`
	InterpretationComment string   `json:"interpretation_comment,omitempty"`
	CreatedAt             string   `json:"created_at,omitempty"`
}

// ResultPage is a page of history rows or pending results as served by the
// scoring API.
type ResultPage struct {
	Results []ResultSummary `json:"results"`
	Total   int             `json:"total,omitempty"`
	Page    int             `json:"page,omitempty"`
	PerPage int             `json:"per_page,omitempty"`
}

// PendingPage carries full results awaiting an administrator.
type PendingPage struct {
	Results []Result `json:"results"`
	Total   int      `json:"total,omitempty"`
	Page    int      `json:"page,omitempty"`
	PerPage int      `json:"per_page,omitempty"`
}

// UnmarshalJSON tolerates numeric ids and answers keyed by question id with
// numeric or string values.
func (r *Result) UnmarshalJSON(data []byte) error {
	type alias Result
	var raw struct {
		alias
		ID       interface{}            `json:"id"`
		ResultID interface{}            `json:"result_id"`
		Answers  map[string]interface{} `json:"answers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Result(raw.alias)
	rawID := raw.ID
	if rawID == nil {
		// the submit endpoint names the id result_id
		rawID = raw.ResultID
	}
	id, err := cast.ToStringE(rawID)
	if err != nil {
		return err
	}
	r.ID = id

	if raw.Answers != nil {
		r.Answers = make(map[string]int, len(raw.Answers))
		for questionID, value := range raw.Answers {
			answer, err := cast.ToIntE(value)
			if err != nil {
				return err
			}
			r.Answers[questionID] = answer
		}
	}
	if r.Severity == "" {
		r.Severity = SeverityForScore(r.TotalScore)
	}
	return nil
}

func (s *ResultSummary) UnmarshalJSON(data []byte) error {
	type alias ResultSummary
	var raw struct {
		alias
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = ResultSummary(raw.alias)
	id, err := cast.ToStringE(raw.ID)
	if err != nil {
		return err
	}
	s.ID = id
	if s.Severity == "" {
		s.Severity = SeverityForScore(s.TotalScore)
	}
	return nil
}

// Summary projects a full result onto a history row.
func (r *Result) Summary() ResultSummary {
	summary := ResultSummary{
		ID:                    r.ID,
		TotalScore:            r.TotalScore,
		Severity:              r.Severity,
		HasSuicidalRisk:       r.HasSuicidalRisk,
		IsInterpreted:         r.IsInterpreted,
		InterpretationComment: r.InterpretationComment,
		CreatedAt:             r.CreatedAt,
	}
	if r.Questionnaire != nil {
		summary.QuestionnaireName = r.Questionnaire.Name
	}
	return summary
}
