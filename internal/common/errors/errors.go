// Package errors provides standardized error handling for the grievance portal client.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Local validation: recovered inline, never sent to the backend.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Remote submission failures: surfaced as a single banner on the final step.
	ErrCodeSubmissionFailed  ErrorCode = "SUBMISSION_FAILED"
	ErrCodeSubmissionTimeout ErrorCode = "SUBMISSION_TIMEOUT"

	// Status fetch failures: must remain distinct from "no application exists".
	ErrCodeStatusFetchFailed ErrorCode = "STATUS_FETCH_FAILED"

	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"

	ErrCodeResponseDecodeFailed   ErrorCode = "RESPONSE_DECODE_FAILED"
	ErrCodeContractViolation      ErrorCode = "CONTRACT_VIOLATION"
	ErrCodeRequestBuildFailed     ErrorCode = "REQUEST_BUILD_FAILED"
	ErrCodeBackendUnavailable     ErrorCode = "BACKEND_UNAVAILABLE"
	ErrCodeSessionStoreFailed     ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeTemplateNotFound       ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateParamsMissing  ErrorCode = "TEMPLATE_PARAMS_MISSING"
	ErrCodeEmailSendFailed        ErrorCode = "EMAIL_SEND_FAILED"
	ErrCodeExportFailed           ErrorCode = "EXPORT_FAILED"
	ErrCodeComplaintSubmitFailed  ErrorCode = "COMPLAINT_SUBMIT_FAILED"
	ErrCodeTestResultSubmitFailed ErrorCode = "TEST_RESULT_SUBMIT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is supports errors.Is matching on the code.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the ErrorCode from err, or empty string when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ""
}

// NewValidationFailedError creates a non-retryable local validation error.
// It is never transmitted; callers render the per-field messages inline.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Required fields are missing or invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError creates a retryable submission error. All non-2xx
// backend responses funnel here; the draft is preserved for retry.
func NewSubmissionFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   "Application submission failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionTimeoutError creates a retryable timeout error for a submission
// call that exceeded its bounded deadline.
func NewSubmissionTimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionTimeout,
		Message:   "Application submission timed out",
		Details:   fmt.Sprintf("no response within %s", timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatusFetchFailedError creates a retryable status-fetch error. Consumers
// must show a retry affordance and never fall through to the blank wizard.
func NewStatusFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStatusFetchFailed,
		Message:   "Could not load application status",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionExpiredError creates a non-retryable session error.
func NewSessionExpiredError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionExpired,
		Message:   "Session has expired",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError creates a non-retryable authorization error.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Not authorized for this operation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseDecodeFailedError creates a non-retryable decode error.
func NewResponseDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseDecodeFailed,
		Message:   "Backend response could not be decoded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewContractViolationError creates a non-retryable error for a backend
// response that fails schema validation.
func NewContractViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeContractViolation,
		Message:   "Backend response violates the expected contract",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestBuildFailedError creates a non-retryable request construction error.
func NewRequestBuildFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestBuildFailed,
		Message:   "Failed to build backend request",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBackendUnavailableError creates a retryable connectivity error.
func NewBackendUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBackendUnavailable,
		Message:   "Backend is unreachable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session cache error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session cache operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template lookup error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Email template not found in registry",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateParamsMissingError creates a non-retryable render precondition error.
func NewTemplateParamsMissingError(templateID string, missing []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateParamsMissing,
		Message:   "Required template parameters are missing",
		Details:   fmt.Sprintf("templateId: %s, missing: %v", templateID, missing),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable delivery error.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExportFailedError creates a non-retryable export error.
func NewExportFailedError(format string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFailed,
		Message:   "Export generation failed",
		Details:   fmt.Sprintf("format: %s, error: %s", format, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewComplaintSubmitFailedError creates a retryable complaint submission error.
func NewComplaintSubmitFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeComplaintSubmitFailed,
		Message:   "Complaint submission failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTestResultSubmitFailedError creates a retryable error for the
// test-completion persistence call.
func NewTestResultSubmitFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTestResultSubmitFailed,
		Message:   "Could not record qualification test result",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
