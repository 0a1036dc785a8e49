package mindbody

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited is returned before any network call when a local rate
	// window is exhausted.
	ErrRateLimited = errors.New("mindbody: request rate limit exceeded")

	// ErrUnavailable wraps the last failure after all retry attempts.
	ErrUnavailable = errors.New("mindbody: upstream unavailable")

	// ErrTokenMissing is returned when a token response carries no AccessToken.
	ErrTokenMissing = errors.New("mindbody: token response missing access token")
)

// HTTPError is an upstream response with a non-success status code.
type HTTPError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("mindbody: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ProtocolError is an upstream response body that could not be decoded.
type ProtocolError struct {
	Endpoint string
	Err      error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("mindbody: %s returned malformed body: %v", e.Endpoint, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var herr *HTTPError
	return errors.As(err, &herr) && herr.StatusCode == 404
}
