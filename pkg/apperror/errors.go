package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the POS API. The raw response
// payload is kept verbatim so callers can surface server-side validation
// messages without the client guessing at their shape.
type APIError struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// TransportError represents a failure before any HTTP response was received
// (DNS, connect, timeout). It wraps the underlying network error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrSessionExpired = errors.New("session expired, login required")
	ErrNoSale         = errors.New("sale not found")
)

// NewAPIError creates an APIError from a response status and body.
func NewAPIError(statusCode int, payload []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    messageFromPayload(statusCode, payload),
		Payload:    payload,
	}
}

// NewTransportError wraps a network-level failure.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// messageFromPayload pulls a human-readable message out of common API error
// shapes ({"detail": ...} or {"message": ...}), falling back to the status text.
func messageFromPayload(statusCode int, payload []byte) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(statusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// GetAPIError converts an error to an APIError if possible.
func GetAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
