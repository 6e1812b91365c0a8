package models

// Severity is the band the scoring API assigns to a total score. Values are
// ordered from mildest to most severe.
type Severity string

const (
	SeverityMinimal          Severity = "Minimal or none"
	SeverityMild             Severity = "Mild"
	SeverityModerate         Severity = "Moderate"
	SeverityModeratelySevere Severity = "Moderately severe"
	SeveritySevere           Severity = "Severe"
)

var severityOrder = []Severity{
	SeverityMinimal,
	SeverityMild,
	SeverityModerate,
	SeverityModeratelySevere,
	SeveritySevere,
}

var severityLabels = map[Severity]string{
	SeverityMinimal:          "Минимальная",
	SeverityMild:             "Лёгкая",
	SeverityModerate:         "Умеренная",
	SeverityModeratelySevere: "Умеренно тяжёлая",
	SeveritySevere:           "Тяжёлая",
}

// PHQ-9 lower bounds, one per severity in order.
var severityLowerBounds = []int{0, 5, 10, 15, 20}

// Rank returns the position of the severity in the ordered set, or -1.
func (s Severity) Rank() int {
	for i, severity := range severityOrder {
		if severity == s {
			return i
		}
	}
	return -1
}

func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Label returns the display label. Unknown values are shown as sent.
func (s Severity) Label() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Severity) MoreSevereThan(other Severity) bool {
	return s.Rank() > other.Rank()
}

// SeverityForScore maps a PHQ-9 total score onto its band. It is only used
// when the scoring API sends a result without a label.
func SeverityForScore(score int) Severity {
	severity := SeverityMinimal
	for i, lowerBound := range severityLowerBounds {
		if score >= lowerBound {
			severity = severityOrder[i]
		}
	}
	return severity
}
