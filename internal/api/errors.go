package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure reported by the backend as an HTTP error response.
// Status carries the backend status code and Message the human-readable
// reason from the `{"error": "..."}` payload, so callers can show it to the
// user without string-matching.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend not-found response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsValidation reports whether err is a backend validation or business
// failure (insufficient stock, bad order fields, and so on).
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// Reason extracts the user-facing failure message from err. Transport
// failures get a generic message; their detail stays in the logs.
func Reason(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "The store is unreachable right now. Please try again."
}
