package state

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("unknown form field")

// FieldProblem names one draft field that blocked a submission.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by a submit when required fields are missing.
// The state it was returned from is left untouched.
type ValidationError struct {
	Form     string
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s form: invalid fields: %s", e.Form, strings.Join(e.Fields(), ", "))
}

// Fields returns the offending form keys in form order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		fields = append(fields, p.Field)
	}
	return fields
}
