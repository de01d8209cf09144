package utils

// ValidationError reports rejected construction input. It carries one
// message per offending field so callers can surface all problems at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + FormatValidationErrors(e.Fields)
}

// NewValidationError wraps a field->message map produced by ValidateStruct.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldValidationError builds a ValidationError for a single field.
func FieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
