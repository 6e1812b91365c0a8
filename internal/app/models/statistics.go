package models

type Statistics struct {
	TotalUsers                 int             `json:"total_users"`
	TotalResults               int             `json:"total_results"`
	TotalPendingInterpretation int             `json:"total_pending_interpretations"`
	PHQ9                       *PHQ9Statistics `json:"phq9_statistics,omitempty"`
}

type PHQ9Statistics struct {
	TotalTests           int            `json:"total_tests"`
	AverageScore         float64        `json:"average_score"`
	SeverityDistribution map[string]int `json:"severity_distribution,omitempty"`
}

// SeverityShare returns the fraction of tests that fell into the band.
func (s *PHQ9Statistics) SeverityShare(severity Severity) float64 {
	if s == nil || s.TotalTests == 0 {
		return 0
	}
	return float64(s.SeverityDistribution[string(severity)]) / float64(s.TotalTests)
}

// DetailedStatistics is passed through as the scoring API shapes it.
type DetailedStatistics map[string]interface{}
