package trip

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidDate     ErrorCode = "INVALID_DATE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError is an error that already knows how it should be rendered to a client.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidDateError reports an availability entry that is not a calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// AsAppError lets sendError render InvalidDateError as a 400.
func (e *InvalidDateError) AsAppError() *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeInvalidDate,
		Message: e.Error(),
	}
}

// OracleError wraps a failed price lookup for one candidate.
type OracleError struct {
	Destination string
	Candidate   Candidate
	Err         error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("pricing %s %s->%s: %v", e.Destination, e.Candidate.Depart, e.Candidate.Return, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

// asAppError finds the client-facing form of err, if it has one.
func asAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	var dateErr *InvalidDateError
	if errors.As(err, &dateErr) {
		return dateErr.AsAppError(), true
	}
	return nil, false
}

// IsValidation reports whether err was caused by a bad request.
func IsValidation(err error) bool {
	appErr, ok := asAppError(err)
	return ok && appErr.Status == http.StatusBadRequest
}
