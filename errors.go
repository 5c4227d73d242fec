package client

import (
	"errors"
	"fmt"
	"strings"

	"git.sr.ht/~jamesponddotco/xstd-go/xerrors"
)

const (
	// ErrNilClient is returned when a method is called on a nil [Client].
	ErrNilClient xerrors.Error = "client is nil"

	// ErrNotConnected is returned by [Client.Do] before [Client.Connect].
	ErrNotConnected xerrors.Error = "client not connected - call Connect() first"

	// ErrBaseURLRequired is returned by [Client.Connect] when no base URL is set.
	ErrBaseURLRequired xerrors.Error = "base URL must be set"

	// ErrInvalidOptions is returned by [Client.Connect] when the options fail
	// validation.
	ErrInvalidOptions xerrors.Error = "invalid options"

	// ErrRequestFailed is returned when a request could not be sent or no
	// response was received.
	ErrRequestFailed xerrors.Error = "request failed"

	// ErrNilRequest is returned by [LogTransport] for a nil request.
	ErrNilRequest xerrors.Error = "request is nil"

	// ErrCannotReadBody is returned by [LogTransport] when a response body
	// cannot be buffered for logging.
	ErrCannotReadBody xerrors.Error = "cannot read response body"
)

// _emptyErrorBody is reported by [ResponseError] when the server sent neither
// a body nor structured errors.
const _emptyErrorBody = "(empty error body)"

// ResponseError is returned by [Client.Do] when the server answers with a
// non-2xx status code or [ClientConfig.ResponseErrors] reports errors.
type ResponseError struct {
	// Method is the HTTP method of the failed request.
	Method string

	// URL is the requested URL.
	URL string

	// Body is the raw response body.
	Body string

	// Errors holds the errors extracted by the client configuration.
	Errors []error

	// StatusCode is the HTTP status code.
	StatusCode int
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	detail := strings.TrimSpace(e.Body)

	if len(e.Errors) > 0 {
		detail = errors.Join(e.Errors...).Error()
		detail = strings.ReplaceAll(detail, "\n", "; ")
	}

	if detail == "" {
		detail = _emptyErrorBody
	}

	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, detail)
}

// Unwrap returns the extracted errors so they can be matched with errors.Is
// and errors.As.
func (e *ResponseError) Unwrap() []error {
	return e.Errors
}
