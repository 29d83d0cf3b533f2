package cms

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no content project is configured, which
// callers treat the same as "no documents".
var ErrNotConfigured = errors.New("cms: no project configured")

// HTTPError represents a non-2xx response from the content API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("cms: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
