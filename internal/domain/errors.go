package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrRateLimited   = errors.New("rate limited")
)

// Rule names the invariant a FieldError reports.
type Rule string

const (
	RuleRequired      Rule = "required"
	RuleFormat        Rule = "format"
	RuleNotFuture     Rule = "not_future"
	RuleOrder         Rule = "order"
	RuleOutOfRange    Rule = "out_of_range"
	RuleDuration      Rule = "duration"
	RuleLength        Rule = "length"
	RuleCharset       Rule = "charset"
	RuleWeakPassword  Rule = "weak_password"
	RuleInjection     Rule = "injection"
	RuleSpecialChars  Rule = "special_chars"
	RuleRepeatedChars Rule = "repeated_chars"
	RuleInvalid       Rule = "invalid"
	RuleUnique        Rule = "unique"
	RuleSelfAction    Rule = "self_action"
	RuleLastAdmin     Rule = "last_admin"
)

func (r Rule) String() string { return string(r) }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError

	cause error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap reports ErrValidation and, when set, the underlying cause
// (e.g. ErrAlreadyExists for a translated uniqueness violation).
func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrValidation, e.cause}
	}
	return []error{ErrValidation}
}

// First returns the first field error. ok is false for an empty error list.
func (e *ValidationError) First() (FieldError, bool) {
	if len(e.Errors) == 0 {
		return FieldError{}, false
	}
	return e.Errors[0], true
}

// Has reports whether the list contains an error for field with the given rule.
func (e *ValidationError) Has(field string, rule Rule) bool {
	for _, fe := range e.Errors {
		if fe.Field == field && fe.Rule == rule {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field string, rule Rule, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Rule: rule, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewUniqueError reports a uniqueness violation on field in the same shape as
// ordinary validation failures. The result matches both ErrValidation and
// ErrAlreadyExists.
func NewUniqueError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Rule: RuleUnique, Message: message}},
		cause:  ErrAlreadyExists,
	}
}

// FirstRule extracts the rule of the first field error from err, if err is
// (or wraps) a *ValidationError.
func FirstRule(err error) (Rule, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return "", false
	}
	fe, ok := ve.First()
	if !ok {
		return "", false
	}
	return fe.Rule, true
}
