package errs

import "strings"

// Response is the JSON body written for every error response.
//
//	{ "error": "Internal Server Error" }
type Response struct {
	Error string `json:"error"`
}

// HTTPError is the error-result type handlers return.
//
// It implements the `error` interface via Error().
// Only Message is sent to the client; Code and Cause are for logs.
// Fields:
//   - Code: machine-friendly error code (e.g. "INTERNAL_SERVER_ERROR").
//   - Message: human-friendly message, safe to show.
//   - Status: HTTP status code.
//   - Cause: underlying error, never serialized.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// The message is the client-safe text. Use Unwrap to reach the cause.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the cause so errors.As/errors.Is can walk into it
// (e.g. to find a *pgconn.PgError for logging).
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is also a *HTTPError.
//
// This does NOT compare Code/Status. It only checks the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithCode returns a copy of this HTTPError with Code replaced.
func (e *HTTPError) WithCode(code string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: e.Message,
		Status:  e.Status,
		Cause:   e.Cause,
	}
}

// Body returns the JSON payload for this error.
func (e *HTTPError) Body() Response {
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
