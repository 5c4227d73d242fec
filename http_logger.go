package client

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultCategory is the category label used by [HTTPLogger] unless
// [WithCategory] is given.
const DefaultCategory = "HTTPClient"

const (
	// SuccessMarker prefixes response summaries with a status code in the
	// [200, 400) range.
	SuccessMarker = "✅"

	// FailureMarker prefixes response summaries for every other status code.
	FailureMarker = "❌"

	// EmptyResponseMarker prefixes the summary logged when no response was
	// received at all.
	EmptyResponseMarker = "⚠️"
)

// LoggerOption configures an [HTTPLogger].
type LoggerOption func(*HTTPLogger)

// WithVerbose enables body, body stream and curl output. Without it requests
// are still logged, at error level, and responses are not logged at all.
func WithVerbose(verbose bool) LoggerOption {
	return func(l *HTTPLogger) {
		l.verbose = verbose
	}
}

// WithRequestBodyTransform sets the transform applied to request bodies
// before they are rendered, e.g. [PrettyJSON].
func WithRequestBodyTransform(transform BodyTransform) LoggerOption {
	return func(l *HTTPLogger) {
		l.requestTransform = transform
	}
}

// WithResponseBodyTransform sets the transform applied to response bodies
// before they are rendered, e.g. [PrettyJSON].
func WithResponseBodyTransform(transform BodyTransform) LoggerOption {
	return func(l *HTTPLogger) {
		l.responseTransform = transform
	}
}

// WithCategory overrides [DefaultCategory]. Empty values are ignored.
func WithCategory(category string) LoggerOption {
	return func(l *HTTPLogger) {
		if category = strings.TrimSpace(category); category != "" {
			l.category = category
		}
	}
}

// HTTPLogger formats outgoing requests and incoming responses for human
// inspection and forwards the text to a [Sink].
//
// An HTTPLogger is immutable once built and keeps no state between calls, so
// it is safe for concurrent use as long as its sink is.
type HTTPLogger struct {
	sink              Sink
	requestTransform  BodyTransform
	responseTransform BodyTransform
	category          string
	verbose           bool
}

// NewHTTPLogger returns an [HTTPLogger] writing to sink. A nil sink is
// replaced by [NoopSink].
func NewHTTPLogger(sink Sink, opts ...LoggerOption) *HTTPLogger {
	if sink == nil {
		sink = NoopSink{}
	}

	l := &HTTPLogger{
		sink:     sink,
		category: DefaultCategory,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Verbose reports whether bodies and curl commands are logged.
func (l *HTTPLogger) Verbose() bool {
	return l.verbose
}

// Category returns the label passed to the sink with every message.
func (l *HTTPLogger) Category() string {
	return l.category
}

// LogRequest logs req before it is sent. A nil request is ignored.
//
// In verbose mode the request line, the summary and a curl command are logged
// at verbose level. Otherwise the request line and a summary without body are
// logged at error level.
func (l *HTTPLogger) LogRequest(req *http.Request) {
	if req == nil {
		return
	}

	if !l.verbose {
		l.sink.Error(l.category, requestLine(req))
		l.sink.Error(l.category, l.FormatRequest(req))

		return
	}

	l.sink.Verbose(l.category, requestLine(req))
	l.sink.Verbose(l.category, l.FormatRequest(req))

	if curl, ok := CurlCommand(req); ok {
		l.sink.Verbose(l.category, curl)
	}
}

// FormatRequest returns the multi-line summary of req logged by
// [HTTPLogger.LogRequest].
func (l *HTTPLogger) FormatRequest(req *http.Request) string {
	if req == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("Method: " + req.Method + "\n")
	b.WriteString("URL: " + urlString(req) + "\n")
	b.WriteString("Headers:")

	for _, key := range sortedHeaderKeys(req.Header) {
		for _, value := range req.Header[key] {
			b.WriteString("\n    " + key + ": " + value)
		}
	}

	if !l.verbose {
		return b.String()
	}

	body, stream := requestBody(req)

	if stream != "" {
		b.WriteString("\nBody Stream: " + stream)
	}

	if text, ok := renderBody(l.requestTransform, body); ok {
		b.WriteString("\nBody: " + text)
	}

	return b.String()
}

// LogResponse logs the outcome of a request to target. resp may be nil when
// nothing was received. Nothing is logged unless the logger is verbose.
func (l *HTTPLogger) LogResponse(resp *http.Response, body []byte, target string) {
	summary := l.FormatResponse(resp, body, target)

	if l.verbose {
		l.sink.Verbose(l.category, summary)
	}
}

// FormatResponse returns the summary logged by [HTTPLogger.LogResponse].
func (l *HTTPLogger) FormatResponse(resp *http.Response, body []byte, target string) string {
	if resp == nil {
		return EmptyResponseMarker + " Empty response received from URL:" + target
	}

	url := target
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}

	marker := FailureMarker
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusBadRequest {
		marker = SuccessMarker
	}

	summary := marker + " Status Code: " + strconv.Itoa(resp.StatusCode) + " URL:" + url

	if !l.verbose {
		return summary
	}

	if text, ok := renderBody(l.responseTransform, body); ok {
		summary += "\n" + text
	}

	return summary
}

// LogError logs message at error level regardless of verbosity.
func (l *HTTPLogger) LogError(message string) {
	l.sink.Error(l.category, message)
}

// renderBody transforms body and returns it as text if the result is
// non-empty UTF-8.
func renderBody(transform BodyTransform, body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	out := applyTransform(transform, body)
	if len(out) == 0 || !utf8.Valid(out) {
		return "", false
	}

	return string(out), true
}

// requestBody returns a copy of the request body when it can be read without
// consuming the request. Otherwise, if a body is present, it returns a
// description of the body stream instead.
func requestBody(req *http.Request) ([]byte, string) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, ""
	}

	if req.GetBody == nil {
		return nil, fmt.Sprintf("%T (content length %d)", req.Body, req.ContentLength)
	}

	rc, err := req.GetBody()
	if err != nil {
		return nil, ""
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, ""
	}

	return body, ""
}

func requestLine(req *http.Request) string {
	return req.Method + " " + urlString(req)
}

func urlString(req *http.Request) string {
	if req.URL == nil {
		return ""
	}

	return req.URL.String()
}

func sortedHeaderKeys(header http.Header) []string {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
