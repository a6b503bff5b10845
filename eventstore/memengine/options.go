package memengine

import (
	"github.com/smtrad/challenge-eventstore/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithStoreName sets the name of the EventStore.
// The name is attached to every log record and every metric as the "store" attribute/label,
// which tells several stores in one process apart.
func WithStoreName(storeName string) Option {
	return func(es *EventStore) error {
		if storeName == "" {
			return eventstore.ErrEmptyStoreName
		}

		es.storeName = storeName

		return nil
	}
}

// WithLogger sets the logger for the EventStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: Single event inserts and iterator removals
// Info level: Query results with durations, bulk removals by type (production-safe)
// Warn level: Iterator removals which found the event already gone.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
// The metrics collector will receive query durations, event counts, and insert/remove counters.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}
