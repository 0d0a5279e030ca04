package models

import "strings"

// ValidationError reports every field that blocked assembly, so the customer
// can fix all of them in one pass.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}
