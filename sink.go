package client

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mock_client

// Sink receives the formatted output of an [HTTPLogger]. The category is a
// fixed label per logger instance; see [WithCategory].
//
// Implementations must be safe for concurrent use if the logger is shared
// between goroutines.
type Sink interface {
	Verbose(category, message string)
	Error(category, message string)
}

// NoopSink is a [Sink] that silently discards all messages.
type NoopSink struct{}

func (NoopSink) Verbose(_, _ string) {}
func (NoopSink) Error(_, _ string)   {}
