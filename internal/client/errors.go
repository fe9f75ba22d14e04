package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend. Message carries the
// server-provided error text when the body held the canonical
// {"message": "..."} envelope, otherwise it is empty and callers fall back
// to a generic string.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// TransportError is a request that produced no response at all (connection
// refused, DNS failure, closed socket). Distinct from APIError so callers
// can word user-facing messages differently.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ServerMessage returns the backend-provided message from err, or fallback
// when err is not an APIError or carries no message.
func ServerMessage(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == code
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }
