package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected Severity
	}{
		{0, SeverityMinimal},
		{4, SeverityMinimal},
		{5, SeverityMild},
		{9, SeverityMild},
		{10, SeverityModerate},
		{14, SeverityModerate},
		{15, SeverityModeratelySevere},
		{19, SeverityModeratelySevere},
		{20, SeveritySevere},
		{27, SeveritySevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SeverityForScore(tt.score), "score %d", tt.score)
	}
}

func TestSeverityOrderAndLabels(t *testing.T) {
	assert.True(t, SeveritySevere.MoreSevereThan(SeverityModeratelySevere))
	assert.True(t, SeverityMild.MoreSevereThan(SeverityMinimal))
	assert.False(t, SeverityMinimal.MoreSevereThan(SeverityMild))

	assert.Equal(t, "Умеренно тяжёлая", SeverityModeratelySevere.Label())
	assert.Equal(t, "custom", Severity("custom").Label())
	assert.False(t, Severity("custom").Valid())
	assert.Equal(t, -1, Severity("custom").Rank())
}

func TestQuestionUnmarshal(t *testing.T) {
	t.Run("Options As Object With Numeric ID", func(t *testing.T) {
		var question Question
		err := json.Unmarshal([]byte(`{"id": 7, "question_text": "Sleep", "options": {"3": "c", "0": "a", "1": "b"}}`), &question)
		require.NoError(t, err)

		assert.Equal(t, "7", question.ID)
		assert.Equal(t, []Option{{0, "a"}, {1, "b"}, {3, "c"}}, question.Options)
		assert.True(t, question.HasOption(3))
		assert.False(t, question.HasOption(2))
	})

	t.Run("Options As List", func(t *testing.T) {
		var question Question
		err := json.Unmarshal([]byte(`{"id": "q1", "question_text": "Mood", "options": [{"value": 0, "label": "a"}]}`), &question)
		require.NoError(t, err)

		assert.Equal(t, "q1", question.ID)
		assert.Equal(t, []Option{{0, "a"}}, question.Options)
	})

	t.Run("Non Numeric Option Key", func(t *testing.T) {
		var question Question
		err := json.Unmarshal([]byte(`{"id": "q1", "options": {"x": "a"}}`), &question)
		assert.Error(t, err)
	})
}

func TestResultUnmarshal(t *testing.T) {
	var result Result
	err := json.Unmarshal([]byte(`{"id": 42, "total_score": 12, "answers": {"1": 2, "9": "1"}, "questionnaire": {"name": "PHQ-9"}}`), &result)
	require.NoError(t, err)

	assert.Equal(t, "42", result.ID)
	assert.Equal(t, SeverityModerate, result.Severity)
	assert.Equal(t, map[string]int{"1": 2, "9": 1}, result.Answers)

	summary := result.Summary()
	assert.Equal(t, "PHQ-9", summary.QuestionnaireName)
	assert.Equal(t, 12, summary.TotalScore)
}

func TestUserMerge(t *testing.T) {
	user := &User{ID: "1", FullName: "Old", Phone: "+100"}
	name := "New"
	user.Merge(ProfileChanges{FullName: &name})

	assert.Equal(t, "New", user.FullName)
	assert.Equal(t, "+100", user.Phone)
}

func TestQuestionnaireQuestionIndex(t *testing.T) {
	questionnaire := &Questionnaire{Questions: []Question{{ID: "q1"}, {ID: "q2"}}}

	assert.Equal(t, 1, questionnaire.QuestionIndex("q2"))
	assert.Equal(t, -1, questionnaire.QuestionIndex("q9"))
}

func TestResultUnmarshalSubmitShape(t *testing.T) {
	var result Result
	err := json.Unmarshal([]byte(`{"result_id": 5, "total_score": 21, "severity": "Severe", "has_suicidal_risk": true}`), &result)
	require.NoError(t, err)

	assert.Equal(t, "5", result.ID)
	assert.Equal(t, SeveritySevere, result.Severity)
	assert.True(t, result.HasSuicidalRisk)
}
