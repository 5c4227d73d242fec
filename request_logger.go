package client

// RequestLogger is the interface used by [Client] for its own diagnostics and
// by the underlying resty client. Implement this interface to integrate with
// your logging library and supply the implementation via [WithRequestLogger].
//
// The method set matches resty.Logger, so any RequestLogger can be handed to
// resty directly.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// RequestLoggerSink adapts a [RequestLogger] to a [Sink]. Verbose messages are
// written with Debugf and error messages with Errorf.
type RequestLoggerSink struct {
	logger RequestLogger
}

// NewRequestLoggerSink returns a [Sink] writing to logger. A nil logger is
// replaced by [NoopLogger].
func NewRequestLoggerSink(logger RequestLogger) *RequestLoggerSink {
	if logger == nil {
		logger = &NoopLogger{}
	}

	return &RequestLoggerSink{logger: logger}
}

func (s *RequestLoggerSink) Verbose(category, message string) {
	s.logger.Debugf("[%s] %s", category, message)
}

func (s *RequestLoggerSink) Error(category, message string) {
	s.logger.Errorf("[%s] %s", category, message)
}
