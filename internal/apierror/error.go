// Package apierror holds the error format rendered by the todoapp server.
package apierror

import (
	"net/http"
	"strings"
)

// An Error is rendered as a JSON object with a `message` field.
type Error struct {
	HTTPCode int    `json:"-"`
	Message  string `json:"message"`
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if apierr, ok := err.(*Error); ok && apierr.HTTPCode != 0 {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new Error with the given message.
func New(message string) *Error {
	return &Error{Message: message}
}

// NewWithCode returns a new Error with the given HTTP status code and message.
func NewWithCode(code int, message string) *Error {
	return &Error{HTTPCode: code, Message: message}
}

// NotFound returns a 404 Error.
func NotFound(message string) *Error {
	return NewWithCode(http.StatusNotFound, message)
}

// Validation returns a 400 Error joining all field messages.
func Validation(messages []string) *Error {
	return NewWithCode(http.StatusBadRequest, strings.Join(messages, ", "))
}

// ServiceUnavailable returns a 503 Error.
func ServiceUnavailable(message string) *Error {
	return NewWithCode(http.StatusServiceUnavailable, message)
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}
