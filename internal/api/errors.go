package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired is returned locally, before any network I/O, when an
// operation that needs a bearer token is invoked without one.
var ErrAuthRequired = errors.New("authentication required")

// HTTPError is a non-2xx backend response. Message comes from the
// response body's "message" field; when the body carries none, the
// operation's fallback message is used instead.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// NetworkError means the request never produced an HTTP response at
// all: DNS failure, refused connection, timeout, cancelled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401, i.e. the stored
// token was rejected server-side.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusUnauthorized
}
