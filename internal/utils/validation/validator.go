package validation

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator accumulates field errors for one submitted form.
type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Require checks a mandatory text field.
func (v *Validator) Require(value, field string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// Range checks that a numeric field falls inside [min, max].
func (v *Validator) Range(value, min, max int, field string) {
	v.Check(value >= min && value <= max, field,
		fmt.Sprintf("must be between %d and %d", min, max))
}

// Err returns the first accumulated error, or nil when the form is valid.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v.Errors[0]
}
