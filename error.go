package skynet

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResponseTooLarge is returned when a response body exceeds MaxResponseSize.
var ErrResponseTooLarge = errors.New("response body is too large")

// TransportError is returned when a request couldn't be sent or its response read.
type TransportError struct {
	Method string
	URL    string
	parent error
}

func errTransport(method, url string, parent error) error {
	return TransportError{Method: method, URL: url, parent: parent}
}

// Unwrap returns the underlying network error.
func (e TransportError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the transport error.
func (e TransportError) Error() string {
	if e.parent == nil {
		return fmt.Sprintf("%s %s failed", e.Method, e.URL)
	}

	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.parent)
}

// StatusError is returned for responses with a non-2xx status code.
type StatusError struct {
	Code int
	Body []byte
}

func errStatus(code int, body []byte) error {
	return &StatusError{Code: code, Body: body}
}

// Error returns a string representation of the status error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("portal returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}
