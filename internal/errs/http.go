package errs

import (
	"net/http"
)

// New creates an HTTPError whose message is the standard status text.
func New(status int, cause error) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: http.StatusText(status),
		Status:  status,
		Cause:   cause,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is always the generic status text. The real error travels
// in Cause so the global error handler can log it.
func NewInternalServerError(cause error) *HTTPError {
	return New(http.StatusInternalServerError, cause)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
// Used for unknown routes only; a missing todo is not an error.
func NewNotFoundError(cause error) *HTTPError {
	return New(http.StatusNotFound, cause)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(cause error) *HTTPError {
	return New(http.StatusMethodNotAllowed, cause)
}
