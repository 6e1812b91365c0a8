package requests

// FieldRules declares the rules of one form field, checked in order.
type FieldRules struct {
	Name  string   `json:"name" validate:"required"`
	Label string   `json:"label"`
	Rules []string `json:"rules"`
}

type ValidateForm struct {
	Fields []FieldRules       `json:"fields" validate:"required,dive"`
	Values map[string]string `json:"values"`
}
