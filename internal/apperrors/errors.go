package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRemoteCall is returned when a request to the TV directory fails, either
// because the transport failed or because the directory answered with a
// non-success status.
type ErrRemoteCall struct {
	URL        string
	StatusCode int   // 0 when no response was received
	Err        error // underlying transport error, nil for status failures
}

// Error implements the error interface.
func (e *ErrRemoteCall) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote call to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("remote call to %s failed with status %d", e.URL, e.StatusCode)
}

// Unwrap exposes the transport error so errors.Is can reach it.
func (e *ErrRemoteCall) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrRemoteCall) Is(target error) bool {
	_, ok := target.(*ErrRemoteCall)
	return ok
}

// NewTransportError wraps a failure that happened before any response was received.
func NewTransportError(url string, err error) *ErrRemoteCall {
	return &ErrRemoteCall{URL: url, Err: err}
}

// NewStatusError reports a response with a non-success status code.
func NewStatusError(url string, statusCode int) *ErrRemoteCall {
	return &ErrRemoteCall{URL: url, StatusCode: statusCode}
}

// IsNotFound reports whether err is a remote call that the directory answered with 404.
func IsNotFound(err error) bool {
	var remote *ErrRemoteCall
	if errors.As(err, &remote) {
		return remote.StatusCode == http.StatusNotFound
	}
	return false
}
