package apperr

import (
	"errors"
	"net/http"
)

// Error is the application failure type carried from services and handlers
// to the central error boundary, where it is rendered into the response
// envelope. Handlers never format error JSON themselves.
type Error struct {
	Status  int
	Message string
	Errs    []string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with an explicit status code.
func New(status int, message string, errs ...string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Status: status, Message: message, Errs: errs}
}

func BadRequest(message string, errs ...string) *Error {
	return New(http.StatusBadRequest, message, errs...)
}

func Unauthorized(message string, errs ...string) *Error {
	return New(http.StatusUnauthorized, message, errs...)
}

func NotFound(message string, errs ...string) *Error {
	return New(http.StatusNotFound, message, errs...)
}

func Conflict(message string, errs ...string) *Error {
	return New(http.StatusConflict, message, errs...)
}

func Internal(message string, errs ...string) *Error {
	return New(http.StatusInternalServerError, message, errs...)
}

// From normalizes any error into an *Error. Unknown errors become Internal
// with a generic message so internals never leak to clients.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("something went wrong")
}
