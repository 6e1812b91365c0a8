package models

import (
	"sort"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// QuestionnaireSummary is one entry of the available questionnaires list.
type QuestionnaireSummary struct {
	ID            int    `json:"id,omitempty"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"question_count,omitempty"`
}

// Questionnaire is immutable once loaded into a session.
type Questionnaire struct {
	ID          int        `json:"id,omitempty"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	ID      string   `json:"id"`
	Number  int      `json:"question_number,omitempty"`
	Text    string   `json:"question_text"`
	Options []Option `json:"options"`
}

type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// AnswerMap maps a question id to the selected option value.
type AnswerMap map[string]int

func (m AnswerMap) Clone() AnswerMap {
	clone := make(AnswerMap, len(m))
	for questionID, value := range m {
		clone[questionID] = value
	}
	return clone
}

// QuestionIndex returns the position of the question in the questionnaire,
// or -1 when it is not part of it.
func (q *Questionnaire) QuestionIndex(questionID string) int {
	for i, question := range q.Questions {
		if question.ID == questionID {
			return i
		}
	}
	return -1
}

func (q *Question) HasOption(value int) bool {
	for _, option := range q.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts numeric or string question ids and options sent
// either as a list or as a {"value": "label"} object.
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      interface{}     `json:"id"`
		Number  int             `json:"question_number"`
		Text    string          `json:"question_text"`
		Options json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := cast.ToStringE(raw.ID)
	if err != nil {
		return err
	}
	options, err := decodeOptions(raw.Options)
	if err != nil {
		return err
	}

	q.ID = id
	q.Number = raw.Number
	q.Text = raw.Text
	q.Options = options
	return nil
}

func decodeOptions(data json.RawMessage) ([]Option, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var list []Option
	if data[0] == '[' {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var labelled map[string]string
	if err := json.Unmarshal(data, &labelled); err != nil {
		return nil, err
	}
	for key, label := range labelled {
		value, err := cast.ToIntE(key)
		if err != nil {
			return nil, err
		}
		list = append(list, Option{Value: value, Label: label})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Value < list[j].Value })
	return list, nil
}
