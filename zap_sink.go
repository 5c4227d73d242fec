package client

import "go.uber.org/zap"

// ZapSink is a [Sink] backed by a zap logger. Verbose messages are logged at
// debug level and errors at error level, with the category attached as a
// structured field.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a [Sink] writing to logger. A nil logger produces a sink
// that discards everything.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapSink{logger: logger}
}

func (s *ZapSink) Verbose(category, message string) {
	s.logger.Debug(message, zap.String("category", category))
}

func (s *ZapSink) Error(category, message string) {
	s.logger.Error(message, zap.String("category", category))
}
