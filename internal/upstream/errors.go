// internal/upstream/errors.go
package upstream

import (
	"errors"
	"fmt"
)

// GenericErrorMessage is shown when a request failed before reaching
// the upstream API (DNS, connection reset, timeout).
const GenericErrorMessage = "Something went wrong. Please try again."

// APIError is an upstream response that carried an HTTP error status.
// Message holds the upstream-provided message when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status %d", e.Status)
}

// ErrorMessage converts any error returned by this package into the
// user-facing string the admin UI displays. Errors carrying an HTTP
// status keep their upstream message; everything else collapses to
// the generic retry prompt.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return GenericErrorMessage
}

// StatusOf returns the HTTP status carried by err, or 0 when the
// failure never produced a response.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
