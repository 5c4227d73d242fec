package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// LogTransport is an http.RoundTripper that logs every request, response and
// transport error through an [HTTPLogger] before handing control back to the
// caller.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// logger formats and emits the log output.
	logger *HTTPLogger
}

// NewLogTransport returns a [LogTransport] wrapping next. A nil next uses
// http.DefaultTransport and a nil logger discards everything.
func NewLogTransport(next http.RoundTripper, logger *HTTPLogger) *LogTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	if logger == nil {
		logger = NewHTTPLogger(nil)
	}

	return &LogTransport{
		next:   next,
		logger: logger,
	}
}

// RoundTrip implements http.RoundTripper.
//
// Response bodies are only buffered when the logger is verbose, since that is
// the only mode in which they are logged. The buffered body replaces
// resp.Body so callers can still read it.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	t.logger.LogRequest(req)

	target := urlString(req)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.LogError(fmt.Sprintf("%s %s: %v", req.Method, target, err))
		t.logger.LogResponse(nil, nil, target)

		return nil, err
	}

	if !t.logger.Verbose() || resp.Body == nil {
		t.logger.LogResponse(resp, nil, target)

		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if err != nil {
		t.logger.LogError(fmt.Sprintf("%s %s: %v", req.Method, target, err))

		return nil, fmt.Errorf("%w: %w", ErrCannotReadBody, err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	t.logger.LogResponse(resp, body, target)

	return resp, nil
}
