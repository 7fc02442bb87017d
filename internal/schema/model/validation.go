package model

// ValidationResult reports per-type completeness checks over an assembled
// graph. Warnings never affect IsValid.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Schema   Node     `json:"schema,omitempty"`
}
