package responses

type FormValidation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
