package client

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the backend. 4xx codes are
// credential/validation rejections and never trigger offline fallback;
// 5xx codes count as transport-level failures for auth and pickups.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: status code %d, message: %s", e.StatusCode, e.Message)
}

// Validation failures surfaced before any network call.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingFields    = errors.New("please provide all fields")
	ErrNoItems          = errors.New("at least one waste item is required")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// IsTransient reports whether an error should be treated as a transport
// failure: network errors and 5xx responses. Credential rejections (4xx)
// are not transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}
