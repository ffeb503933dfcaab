package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation = "validation_error"
	CodeAuth       = "unauthorized"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal_error"
)

// Error carries the HTTP status a failure should surface as. Message is what
// the client sees; Err is the underlying cause, if any.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	case e.Status != 0:
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeAuth, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: CodeConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: msg, Err: err}
}

// From unwraps err into an *Error. Anything that is not already one becomes
// a 500 so callers never leak an unmapped failure as a 200.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr
	}
	return Internal("Internal server error", err)
}

func StatusOf(err error) int {
	if e := From(err); e != nil && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Is(err error, status int) bool {
	return err != nil && StatusOf(err) == status
}
