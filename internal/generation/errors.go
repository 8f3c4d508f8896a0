// Package generation implements the AI-response ingestion pipeline:
// prompt building, completion invocation, response sanitization, and
// schema validation into typed domain objects.
package generation

import "fmt"

// InputError indicates a caller-supplied field was missing or empty.
// It is raised before any external call is made.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Message)
}

// APICallError represents a failure of the completion capability:
// unreachable, rate limited, timed out, or an upstream error. The call is
// all-or-nothing; no partial result accompanies this error.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// FailureReason classifies why a sanitized payload was rejected.
type FailureReason string

const (
	// ReasonParse means the payload was not well-formed JSON.
	ReasonParse FailureReason = "parse"
	// ReasonMissingField means a required top-level or nested field was absent.
	ReasonMissingField FailureReason = "missing-field"
	// ReasonInvalidValue means a field had the wrong type or an out-of-range value.
	ReasonInvalidValue FailureReason = "invalid-value"
)

// ValidationError represents a rejected model payload. Validation is
// all-or-nothing: no partially populated object ever accompanies it.
type ValidationError struct {
	Reason FailureReason
	Field  string
	Detail string
	Cause  error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Detail != "":
		return fmt.Sprintf("validation failed (%s) on %s: %s", e.Reason, e.Field, e.Detail)
	case e.Field != "":
		return fmt.Sprintf("validation failed (%s) on %s", e.Reason, e.Field)
	case e.Detail != "":
		return fmt.Sprintf("validation failed (%s): %s", e.Reason, e.Detail)
	default:
		return fmt.Sprintf("validation failed (%s)", e.Reason)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
