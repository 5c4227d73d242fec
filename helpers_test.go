package client

import (
	"fmt"
	"sync"
)

const (
	levelVerbose = "verbose"
	levelError   = "error"
)

type sinkEntry struct {
	level    string
	category string
	message  string
}

// recordingSink keeps every message it receives, in order.
type recordingSink struct {
	mu      sync.Mutex
	entries []sinkEntry
}

func (s *recordingSink) Verbose(category, message string) {
	s.record(levelVerbose, category, message)
}

func (s *recordingSink) Error(category, message string) {
	s.record(levelError, category, message)
}

func (s *recordingSink) record(level, category, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, sinkEntry{level: level, category: category, message: message})
}

func (s *recordingSink) all() []sinkEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]sinkEntry(nil), s.entries...)
}

func (s *recordingSink) messages(level string) []string {
	var out []string

	for _, e := range s.all() {
		if e.level == level {
			out = append(out, e.message)
		}
	}

	return out
}

// recordingRequestLogger is a RequestLogger that keeps formatted messages per
// level.
type recordingRequestLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
	debugs []string
}

func (l *recordingRequestLogger) Errorf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func (l *recordingRequestLogger) Warnf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingRequestLogger) Debugf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.debugs = append(l.debugs, fmt.Sprintf(format, v...))
}

func (l *recordingRequestLogger) errorMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.errors...)
}

func (l *recordingRequestLogger) debugMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.debugs...)
}
