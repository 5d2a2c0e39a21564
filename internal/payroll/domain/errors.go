package domain

// FieldError is one field-keyed validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors rejects an input before any calculation runs; no partial
// result is ever produced alongside it.
type ValidationErrors []FieldError

func (ValidationErrors) Error() string { return "validation error" }

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}
