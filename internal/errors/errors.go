package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NewNotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func NewAuthorization(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func NewUnauthenticated(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// ValidationError signals a malformed or incomplete payload.
// Raised at entity construction or use case entry, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsAuthorization(err error) bool {
	return hasStatusCode(err, http.StatusForbidden)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func hasStatusCode(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

// StatusCode maps an error to the HTTP status it should surface as.
func StatusCode(err error) int {
	var v *ValidationError
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
