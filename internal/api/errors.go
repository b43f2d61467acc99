package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned before any network I/O when an
	// authenticated endpoint is called on a client without a token.
	ErrAuthRequired = errors.New("not logged in (run: attendctl login)")

	// ErrAuthExpired is returned when the server answers 401 on an
	// authenticated call. Callers clear the stored session and force
	// a re-login.
	ErrAuthExpired = errors.New("session expired, please log in again")

	// ErrNetworkUnavailable wraps transport-level failures where no
	// response was received at all.
	ErrNetworkUnavailable = errors.New("cannot reach the attendance server")
)

// ValidationError is a local pre-submit failure; it never reaches the network.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a *ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// APIError is a non-2xx response. Message is the server-provided detail
// when it could be parsed, otherwise a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
