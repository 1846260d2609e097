// Package types provides type definitions for the onboarding protocol:
// wire-level job and pathway shapes, request structs, and the normalized
// error type shared by every layer of the client.
package types

import "fmt"

// Error codes produced locally by the client. Remote codes (for example
// EXPLORE_FAILED) pass through the failure envelope untouched.
const (
	CodeUnknown         = "UNKNOWN_ERROR"
	CodeMissingGoals    = "MISSING_GOALS"
	CodeMissingJob      = "MISSING_JOB"
	CodeValidation      = "VALIDATION_ERROR"
	CodeAuthExpired     = "AUTH_EXPIRED"
	defaultErrorMessage = "an unexpected error occurred"
)

// OnboardingError is the single failure shape for the onboarding client.
// Every failure path — local precondition, transport failure, or a remote
// error envelope — normalizes to this type, so callers branch on Code and
// never on the concrete origin of the failure.
type OnboardingError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	// Cause holds the underlying error for transport-level failures.
	// It is not part of the wire shape.
	Cause error `json:"-"`
}

func (e *OnboardingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *OnboardingError) Unwrap() error {
	return e.Cause
}

// NewOnboardingError builds an error with an explicit code and message.
// An empty code defaults to UNKNOWN_ERROR and an empty message to a
// generic one, mirroring how the transport fills a sparse envelope.
func NewOnboardingError(code, message string) *OnboardingError {
	if code == "" {
		code = CodeUnknown
	}
	if message == "" {
		message = defaultErrorMessage
	}
	return &OnboardingError{Code: code, Message: message}
}

// WrapUnknown wraps a transport-level failure (network error, malformed
// body) so it still surfaces with a classifiable code.
func WrapUnknown(message string, cause error) *OnboardingError {
	if message == "" {
		message = defaultErrorMessage
	}
	return &OnboardingError{Code: CodeUnknown, Message: message, Cause: cause}
}

// AsOnboardingError returns err as an *OnboardingError, wrapping it with
// code UNKNOWN_ERROR when it is anything else. A nil err returns nil.
func AsOnboardingError(err error) *OnboardingError {
	if err == nil {
		return nil
	}
	if oe, ok := err.(*OnboardingError); ok {
		return oe
	}
	return WrapUnknown(err.Error(), err)
}
