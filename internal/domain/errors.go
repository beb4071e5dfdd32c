package domain

import (
	"errors"
	"fmt"
)

// RetriableError defines an interface for errors that can be retried
type RetriableError interface {
	error
	IsRetriable() bool
}

// IsRetriable checks if an error is retriable
func IsRetriable(err error) bool {
	var re RetriableError
	if errors.As(err, &re) {
		return re.IsRetriable()
	}
	return false
}

// NetworkError represents a transport-level failure talking to the backend:
// dial/DNS errors, timeouts, or an unexpected HTTP status.
type NetworkError struct {
	Op         string // Gateway operation that failed (e.g., "list_tokens")
	StatusCode int    // HTTP status, 0 when no response was received
	Err        error  // Underlying error
	Retriable  bool   // Whether a manual retry is likely to help
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Err.Error())
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) IsRetriable() bool {
	return e.Retriable
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new retriable network error
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err, Retriable: true}
}

// NewStatusError creates a network error for a non-success HTTP status.
// 5xx and 429 are retriable, other statuses are not.
func NewStatusError(op string, status int, msg string) *NetworkError {
	return &NetworkError{
		Op:         op,
		StatusCode: status,
		Err:        errors.New(msg),
		Retriable:  status >= 500 || status == 429,
	}
}

// ConfigError represents a configuration error (never retriable)
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) IsRetriable() bool {
	return false
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	// ErrNotFound is returned when the backend reports no such resource.
	ErrNotFound = errors.New("not found")

	// ErrMalformedResponse is returned when a payload cannot be decoded or
	// lacks a required field.
	ErrMalformedResponse = errors.New("malformed response")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
