package requests

type InterpretResult struct {
	Comment         string `json:"comment" validate:"required"`
	Recommendations string `json:"recommendations,omitempty"`
}

// Interpretation is the body the scoring API expects on an interpret call.
type Interpretation struct {
	Comment         string `json:"comment"`
	Recommendations string `json:"recommendations,omitempty"`
	Status          string `json:"status"`
}

type UpdateUserStatus struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type FindUsers struct {
	Page     int
	PageSize int
	Search   string `validate:"max=100"`
}

type DetailedStatistics struct {
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
}
