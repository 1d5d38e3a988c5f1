package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrNoConnection indicates no response could be obtained from TMDB
	ErrNoConnection = errors.New("no internet connection")
	// ErrInvalidAPIKey indicates TMDB rejected the API key
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrServerError indicates TMDB answered with a 5xx status
	ErrServerError = errors.New("TMDB server error")
)

// ErrorKind classifies a failed request
type ErrorKind int

const (
	// KindUnclassified covers client errors that are reported as an absent result
	KindUnclassified ErrorKind = iota
	// KindNoConnection indicates no HTTP response was received
	KindNoConnection
	// KindInvalidAPIKey indicates a 401 response
	KindInvalidAPIKey
	// KindServerError indicates a 5xx response
	KindServerError
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindNoConnection:
		return "NO_CONNECTION"
	case KindInvalidAPIKey:
		return "INVALID_API_KEY"
	case KindServerError:
		return "SERVER_ERROR"
	default:
		return "UNCLASSIFIED"
	}
}

// sentinel returns the package error matching the kind
func (k ErrorKind) sentinel() error {
	switch k {
	case KindNoConnection:
		return ErrNoConnection
	case KindInvalidAPIKey:
		return ErrInvalidAPIKey
	case KindServerError:
		return ErrServerError
	default:
		return nil
	}
}

// Classify maps an HTTP status code to an ErrorKind
func Classify(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindInvalidAPIKey
	case status >= http.StatusInternalServerError:
		return KindServerError
	default:
		return KindUnclassified
	}
}

// Error represents a classified TMDB request failure
type Error struct {
	Kind       ErrorKind
	StatusCode int
	StatusText string
	Method     string
	URL        string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindNoConnection:
		return ErrNoConnection.Error()
	case KindInvalidAPIKey:
		return ErrInvalidAPIKey.Error()
	case KindServerError:
		return fmt.Sprintf("%s: %s", ErrServerError, e.StatusText)
	default:
		return fmt.Sprintf("tmdb request failed: status %d: %s", e.StatusCode, e.StatusText)
	}
}

// Unwrap returns the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// IsNoConnection checks if err is a connectivity failure
func IsNoConnection(err error) bool {
	return errors.Is(err, ErrNoConnection)
}

// IsInvalidAPIKey checks if err is an authentication failure
func IsInvalidAPIKey(err error) bool {
	return errors.Is(err, ErrInvalidAPIKey)
}

// IsServerError checks if err is an upstream 5xx failure
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}
