package api

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned to a caller whose request was cancelled because
// a newer request started on the same channel. It is not a failure to
// surface: callers must swallow it without publishing, logging a user-facing
// error, or mutating shared state.
var ErrSuperseded = errors.New("request superseded on its channel")

// TransportError reports a network-level failure: DNS, connect, TLS, or a
// broken response body. The message is the underlying error text.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// DomainError reports a transport-successful response whose business-level
// outcome indicates failure: a false success flag, a missing required field,
// or an undecodable body.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsSuperseded reports whether err means the request was replaced by a newer
// one and its outcome must be ignored.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
