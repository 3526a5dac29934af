package errorvalues

import "strings"

type FieldViolation struct {
	Field      string
	Constraint string
}

// ValidationError carries every violated constraint of one request, so the
// client hears about all of them at once.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(field, constraint string) *ValidationError {
	return &ValidationError{
		Violations: []FieldViolation{{Field: field, Constraint: constraint}},
	}
}

func (ve *ValidationError) Error() string {
	if len(ve.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		parts = append(parts, v.Field+": "+v.Constraint)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
