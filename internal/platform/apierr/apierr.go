package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NewValidation marks an error as caused by the caller's submission data.
// These propagate unchanged and are always user-correctable.
func NewValidation(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "submission_invalid", Err: err}
}

// NewIntegrity marks a reconciliation failure: stored well data that cannot
// be reconstructed into submission form, an unknown catalogue field, or a
// malformed interval. Not user-correctable and never retried.
func NewIntegrity(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "reconciliation_failed", Err: err}
}

func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == "submission_invalid"
}

func IsIntegrity(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == "reconciliation_failed"
}
