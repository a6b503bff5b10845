package helper

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdOut bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdOut,
	}
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		_ = jsonHandler.Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true // Always enabled for testing
}

// WithAttrs implements slog.Handler interface.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// CountRecordsAtLevel returns the number of captured log records at exactly the given level.
func (s *LogHandlerSpy) CountRecordsAtLevel(level slog.Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.records {
		if record.Level == level {
			count++
		}
	}

	return count
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// SpyLogRecordMatcher provides a fluent interface for checking log record attributes.
// Each step narrows the candidate records; Assert is true if at least one candidate survived.
type SpyLogRecordMatcher struct {
	candidates []slog.Record
}

// HasDebugLogWithMessage starts a fluent chain to check a debug-level log record.
func (s *LogHandlerSpy) HasDebugLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelDebug, message)
}

// HasInfoLogWithMessage starts a fluent chain to check an info-level log record.
func (s *LogHandlerSpy) HasInfoLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelInfo, message)
}

// HasWarnLogWithMessage starts a fluent chain to check a warn-level log record.
func (s *LogHandlerSpy) HasWarnLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelWarn, message)
}

func (s *LogHandlerSpy) hasLogWithMessage(level slog.Level, message string) *SpyLogRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	matcher := &SpyLogRecordMatcher{}
	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			matcher.candidates = append(matcher.candidates, record)
		}
	}

	return matcher
}

// WithDurationMS keeps records which have a duration_ms attribute with a non-negative value.
func (m *SpyLogRecordMatcher) WithDurationMS() *SpyLogRecordMatcher {
	return m.where("duration_ms", func(value slog.Value) bool {
		switch value.Kind() {
		case slog.KindInt64:
			return value.Int64() >= 0
		case slog.KindFloat64:
			return value.Float64() >= 0
		default:
			return false
		}
	})
}

// WithEventCount keeps records which have an event_count attribute with a non-negative value.
func (m *SpyLogRecordMatcher) WithEventCount() *SpyLogRecordMatcher {
	return m.where("event_count", func(value slog.Value) bool {
		return value.Kind() == slog.KindInt64 && value.Int64() >= 0
	})
}

// WithExactEventCount keeps records which have an event_count attribute equal to count.
func (m *SpyLogRecordMatcher) WithExactEventCount(count int) *SpyLogRecordMatcher {
	return m.where("event_count", func(value slog.Value) bool {
		return value.Kind() == slog.KindInt64 && value.Int64() == int64(count)
	})
}

// WithStringAttr keeps records which have a string attribute key with the given value.
func (m *SpyLogRecordMatcher) WithStringAttr(key, expected string) *SpyLogRecordMatcher {
	return m.where(key, func(value slog.Value) bool {
		return value.Kind() == slog.KindString && value.String() == expected
	})
}

// WithInt64Attr keeps records which have an integer attribute key with the given value.
func (m *SpyLogRecordMatcher) WithInt64Attr(key string, expected int64) *SpyLogRecordMatcher {
	return m.where(key, func(value slog.Value) bool {
		return value.Kind() == slog.KindInt64 && value.Int64() == expected
	})
}

// WithBoolAttr keeps records which have a bool attribute key with the given value.
func (m *SpyLogRecordMatcher) WithBoolAttr(key string, expected bool) *SpyLogRecordMatcher {
	return m.where(key, func(value slog.Value) bool {
		return value.Kind() == slog.KindBool && value.Bool() == expected
	})
}

// WithStore keeps records which carry the given store name.
func (m *SpyLogRecordMatcher) WithStore(storeName string) *SpyLogRecordMatcher {
	return m.WithStringAttr("store", storeName)
}

func (m *SpyLogRecordMatcher) where(key string, accept func(slog.Value) bool) *SpyLogRecordMatcher {
	kept := m.candidates[:0:0]

	for _, record := range m.candidates {
		matched := false
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key && accept(attr.Value.Resolve()) {
				matched = true
				return false // Stop iteration
			}

			return true // Continue iteration
		})

		if matched {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *SpyLogRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
