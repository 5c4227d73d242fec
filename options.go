package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// _maxTimeout is the upper bound accepted for [WithTimeout].
const _maxTimeout = 5 * time.Minute

type Option func(*Options)

type Options struct {
	timeout        time.Duration
	requestLogger  RequestLogger
	httpLogger     *HTTPLogger
	config         ClientConfig
	transport      http.RoundTripper
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		timeout:       30 * time.Second,
		requestLogger: &NoopLogger{},
		config:        BaseConfig{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// Validate reports the first invalid option, if any.
func (o *Options) Validate() error {
	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > _maxTimeout {
		return fmt.Errorf("timeout must not exceed %s", _maxTimeout)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.config == nil {
		return errors.New("config must not be nil")
	}

	return nil
}

// WithTimeout sets the overall request timeout. Zero disables it; negative
// values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithHTTPLogger sets the [HTTPLogger] attached to every request. When unset,
// the client logs through its [RequestLogger] in non-verbose mode.
func WithHTTPLogger(logger *HTTPLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.httpLogger = logger
		}
	}
}

// WithConfig sets the [ClientConfig]. The default is [BaseConfig].
func WithConfig(config ClientConfig) Option {
	return func(o *Options) {
		if config != nil {
			o.config = config
		}
	}
}

// WithTransport replaces the round tripper used by the underlying HTTP client.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}
