package signup

import (
	"fmt"
	"strings"
)

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_SESSION_DOES_NOT_EXIST          ErrorReason = "SESSION_DOES_NOT_EXIST"
	REASON_SESSION_ALREADY_EXISTS          ErrorReason = "SESSION_ALREADY_EXISTS"
	REASON_VERSION_CONFLICT                ErrorReason = "VERSION_CONFLICT"
	REASON_INVALID_FIELDS                  ErrorReason = "INVALID_FIELDS"
	REASON_WRONG_PHASE                     ErrorReason = "WRONG_PHASE"
	REASON_OPERATION_IN_FLIGHT             ErrorReason = "OPERATION_IN_FLIGHT"
	REASON_PROVIDER_REJECTED               ErrorReason = "PROVIDER_REJECTED"
	REASON_PROVIDER_UNAVAILABLE            ErrorReason = "PROVIDER_UNAVAILABLE"
	REASON_FAILED_TO_GENERATE_PASSWORD     ErrorReason = "FAILED_TO_GENERATE_PASSWORD"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newSignupError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newSignupError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewSessionDoesNotExistError(message string, cause error) *Error {
	return newSignupError(REASON_SESSION_DOES_NOT_EXIST, message, cause)
}

func NewSessionAlreadyExistsError(message string, cause error) *Error {
	return newSignupError(REASON_SESSION_ALREADY_EXISTS, message, cause)
}

func NewVersionConflictError(message string, cause error) *Error {
	return newSignupError(REASON_VERSION_CONFLICT, message, cause)
}

func NewInvalidFieldsError(fieldErrs ValidationErrors) *Error {
	return newSignupError(REASON_INVALID_FIELDS, "One or more fields are invalid", fieldErrs)
}

func NewWrongPhaseError(op Operation, phase Phase) *Error {
	return newSignupError(REASON_WRONG_PHASE, fmt.Sprintf("Cannot run %s while session is %s", op, phase), nil)
}

func NewOperationInFlightError(op Operation) *Error {
	return newSignupError(REASON_OPERATION_IN_FLIGHT, fmt.Sprintf("Session is already %s", op), nil)
}

func NewProviderRejectedError(message string, cause error) *Error {
	return newSignupError(REASON_PROVIDER_REJECTED, message, cause)
}

func NewProviderUnavailableError(message string, cause error) *Error {
	return newSignupError(REASON_PROVIDER_UNAVAILABLE, message, cause)
}

func NewFailedToGeneratePasswordError(cause error) *Error {
	return newSignupError(REASON_FAILED_TO_GENERATE_PASSWORD, "Failed to generate a provider password", cause)
}

func NewTimeoutError(message string) *Error {
	return newSignupError(REASON_TIMEOUT, message, nil)
}

// FieldError is a single failed field validation, with the message shown
// next to the field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// ProviderError is a failure reported by the identity provider. Message is
// the provider's own human readable text.
type ProviderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
