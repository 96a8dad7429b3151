package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingAPIKey indicates no TMDB API key is configured.
// Every fetch fails with it until the user supplies a key.
var ErrMissingAPIKey = errors.New("TMDB API key is not configured")

// genericFetchError is shown when an error carries no usable text
const genericFetchError = "unknown error loading movies"

// HTTPError is a non-2xx response from the catalog API
type HTTPError struct {
	StatusCode int
	Status     string // status text, e.g. "Unauthorized"
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	text := e.Status
	if text == "" {
		text = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("Error %d: %s", e.StatusCode, text)
}

// IsUnauthorized reports whether the API rejected the key
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ParseError is a response body that could not be decoded
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NetworkError is a transport failure (DNS, refused connection, timeout)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog is unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Message normalizes any fetch error into the single human-readable string
// stored by fetch states. Empty or nil errors get a generic fallback.
func Message(err error) string {
	if err == nil {
		return genericFetchError
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return genericFetchError
	}
	return msg
}
